package process

import (
	"strings"
	"time"
)

// PortToken is the placeholder substituted with a process's assigned port.
const PortToken = "$PORT"

// MaxPort is the highest valid TCP port.
const MaxPort = 65535

// Process holds one configured unit of work. It is not modified after the
// resolver has assigned ports.
type Process struct {
	Label          string `json:"label"`
	Command        string `json:"command"`
	Dir            string `json:"directory,omitempty"`
	Port           int    `json:"port,omitempty"` // 0 when the process needs no port
	DisableAutorun bool   `json:"disable_autorun,omitempty"`
	Index          int    `json:"index"`
	Sleep          int    `json:"sleep,omitempty"` // seconds to wait before the next autorun process
}

// HasPort reports whether a port was configured or assigned.
func (p Process) HasPort() bool {
	return p.Port > 0
}

// NeedsPort reports whether the command references the port placeholder.
func (p Process) NeedsPort() bool {
	return strings.Contains(p.Command, PortToken)
}

// SleepDuration converts Sleep to a time.Duration.
func (p Process) SleepDuration() time.Duration {
	return time.Duration(p.Sleep) * time.Second
}
