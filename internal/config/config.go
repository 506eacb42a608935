// Package config locates the process configuration, parses it with the
// matching format parser, assigns ports and exposes the resulting registry.
package config

import (
	"sort"

	"devproc/internal/power"
	"devproc/internal/process"
)

// Config is the resolved, port-assigned process registry for one run.
type Config struct {
	// Filename is the configuration source the processes were read from.
	Filename string
	// Processes keeps declaration order.
	Processes []process.Process
	// Power is nil unless a platform settings document exists.
	Power *power.Settings
}

// Process returns the process with the given label.
func (c *Config) Process(label string) (process.Process, bool) {
	for _, p := range c.Processes {
		if p.Label == label {
			return p, true
		}
	}
	return process.Process{}, false
}

// AutorunnableProcesses returns the processes that start without user action,
// ordered by Index. Processes sharing an index keep declaration order.
func (c *Config) AutorunnableProcesses() []process.Process {
	out := make([]process.Process, 0, len(c.Processes))
	for _, p := range c.Processes {
		if p.DisableAutorun {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// ProcessesWithPort returns the processes that were given a port.
func (c *Config) ProcessesWithPort() []process.Process {
	var out []process.Process
	for _, p := range c.Processes {
		if p.HasPort() {
			out = append(out, p)
		}
	}
	return out
}
