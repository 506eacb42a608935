package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	registryv1 "devproc/api/registry/v1"
	"devproc/internal/daemon"
)

func dialDaemon(ctx context.Context) (registryv1.NameRegistryClient, io.Closer, error) {
	client, conn, err := daemon.Dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client, conn, nil
}

var (
	daemonIsRunning  = daemon.IsRunning
	daemonRunningPID = daemon.RunningPID
	dialDaemonClient = dialDaemon
)

func resetDaemonDeps() {
	daemonIsRunning = daemon.IsRunning
	daemonRunningPID = daemon.RunningPID
	dialDaemonClient = dialDaemon
}

func (a *App) withClient(ctx context.Context, timeout time.Duration, fn func(context.Context, registryv1.NameRegistryClient) error) error {
	if timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}
	if !daemonIsRunning() {
		return errors.New("daemon is not running")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, conn, err := dialDaemonClient(ctx)
	if err != nil {
		return fmt.Errorf("connect to daemon: %w", err)
	}
	if conn != nil {
		defer conn.Close()
	}

	return fn(ctx, client)
}
