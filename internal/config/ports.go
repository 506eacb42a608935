package config

import (
	"fmt"
	"strconv"
	"strings"

	"devproc/internal/process"
)

// assignPorts gives every process whose command references $PORT and has no
// explicit port the next port from basePort, in declaration order, then
// substitutes $PORT in the commands of all processes that have a port. It
// fails without touching procs when the counter would pass process.MaxPort.
func assignPorts(procs []process.Process, basePort int) error {
	next := basePort
	for _, p := range procs {
		if p.HasPort() || !p.NeedsPort() {
			continue
		}
		if next > process.MaxPort {
			return fmt.Errorf("%w: no port left for process %s (base port %d)", ErrInvalidConfig, p.Label, basePort)
		}
		next++
	}

	next = basePort
	for i := range procs {
		p := &procs[i]
		if !p.HasPort() && p.NeedsPort() {
			p.Port = next
			next++
		}
		if p.HasPort() {
			p.Command = strings.ReplaceAll(p.Command, process.PortToken, strconv.Itoa(p.Port))
		}
	}
	return nil
}
