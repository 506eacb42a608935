package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	registryv1 "devproc/api/registry/v1"
	"devproc/internal/process"
)

// ErrLabelNotFound is returned by Lookup when the daemon has no port for a label.
var ErrLabelNotFound = errors.New("label not found")

// Lookup asks the daemon for the port registered under label.
func (a *App) Lookup(ctx context.Context, label string, timeout time.Duration) (int, error) {
	label, err := process.NormalizeLabel(label)
	if err != nil {
		return 0, err
	}

	var port int
	err = a.withClient(ctx, timeout, func(ctx context.Context, client registryv1.NameRegistryClient) error {
		resp, err := client.Lookup(ctx, wrapperspb.String(label))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s", ErrLabelNotFound, label)
			}
			return fmt.Errorf("daemon lookup RPC failed: %w", err)
		}
		port = int(resp.GetValue())
		return nil
	})
	return port, err
}
