package app

import (
	"devproc/internal/daemon"
)

// DaemonStatus represents current information about the daemon process.
type DaemonStatus struct {
	Running bool
	PID     int
}

// Status returns whether the daemon is running and its PID if known.
func (a *App) Status() (DaemonStatus, error) {
	if !daemonIsRunning() {
		return DaemonStatus{Running: false}, nil
	}
	pid, err := daemonRunningPID()
	if err != nil {
		return DaemonStatus{Running: true}, err
	}
	return DaemonStatus{Running: true, PID: pid}, nil
}

// StopDaemon attempts to stop the running daemon.
func (a *App) StopDaemon(force bool) error {
	return daemon.StopRunningDaemon(force)
}

// DaemonHandle holds a running daemon instance.
type DaemonHandle struct {
	srv *daemon.Server
}

// Close stops the running daemon instance.
func (h *DaemonHandle) Close() error {
	if h == nil || h.srv == nil {
		return nil
	}
	return h.srv.Close()
}

// Server exposes the underlying daemon server.
func (h *DaemonHandle) Server() *daemon.Server {
	if h == nil {
		return nil
	}
	return h.srv
}

// StartParams selects what the daemon serves.
type StartParams struct {
	// Config is a path or config name; empty selects the default files.
	Config string
}

// StartDaemon starts the daemon in this process and returns a handle for closing it.
func (a *App) StartDaemon(params StartParams) (*DaemonHandle, error) {
	opts, err := a.DaemonOptions()
	if err != nil {
		return nil, err
	}
	r, err := a.configResolver()
	if err != nil {
		return nil, err
	}
	srv, err := daemon.StartDaemon(daemon.StartOptions{
		Config:      params.Config,
		BasePort:    opts.BasePort,
		MetricsAddr: opts.MetricsAddr,
		WatchConfig: opts.WatchConfig,
		Resolver:    r,
		Logger:      a.logger,
	})
	if err != nil {
		return nil, err
	}
	return &DaemonHandle{srv: srv}, nil
}
