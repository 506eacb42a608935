package app

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	registryv1 "devproc/api/registry/v1"
	"devproc/internal/process"
)

// AddParams configures a runtime label registration.
type AddParams struct {
	Label   string
	Port    int
	Timeout time.Duration
}

// Add registers label -> port with the running daemon. An existing label is
// overwritten.
func (a *App) Add(ctx context.Context, params AddParams) error {
	label, err := process.NormalizeLabel(params.Label)
	if err != nil {
		return err
	}
	if params.Port <= 0 || params.Port > process.MaxPort {
		return fmt.Errorf("invalid port %d", params.Port)
	}

	return a.withClient(ctx, params.Timeout, func(ctx context.Context, client registryv1.NameRegistryClient) error {
		if _, err := client.Add(ctx, registryv1.NewAddRequest(label, params.Port)); err != nil {
			if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
				return fmt.Errorf("daemon rejected %q: %s", label, st.Message())
			}
			return fmt.Errorf("daemon add RPC failed: %w", err)
		}
		return nil
	})
}
