package app

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	registryv1 "devproc/api/registry/v1"
	"devproc/internal/process"
)

// List fetches the processes of the configuration the daemon serves.
func (a *App) List(ctx context.Context, timeout time.Duration) ([]process.Process, error) {
	var procs []process.Process
	err := a.withClient(ctx, timeout, func(ctx context.Context, client registryv1.NameRegistryClient) error {
		resp, err := client.ListProcesses(ctx, &emptypb.Empty{})
		if err != nil {
			return fmt.Errorf("daemon list RPC failed: %w", err)
		}
		procs = registryv1.ProcessesFromList(resp)
		return nil
	})
	return procs, err
}
