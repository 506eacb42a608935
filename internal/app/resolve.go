package app

import (
	"devproc/internal/config"
	"devproc/internal/process"
)

// Resolve locates and parses the process configuration named by nameOrPath.
// Ports start at the configured base port.
func (a *App) Resolve(nameOrPath string) (*config.Config, error) {
	opts, err := a.DaemonOptions()
	if err != nil {
		return nil, err
	}
	r, err := a.configResolver()
	if err != nil {
		return nil, err
	}
	return r.Resolve(nameOrPath, opts.BasePort)
}

// Autorun returns the processes to start for nameOrPath, in start order.
func (a *App) Autorun(nameOrPath string) ([]process.Process, error) {
	cfg, err := a.Resolve(nameOrPath)
	if err != nil {
		return nil, err
	}
	return cfg.AutorunnableProcesses(), nil
}
