package daemon

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	registryv1 "devproc/api/registry/v1"
	"devproc/internal/dnscache"
	"devproc/internal/process"
)

// service implements the NameRegistry gRPC service backed by the cache.
type service struct {
	registryv1.UnimplementedNameRegistryServer

	cache *dnscache.Cache
	// processes returns the currently loaded configuration.
	processes func() []process.Process
	// snapshotPath is rewritten after every successful Add; empty disables it.
	snapshotPath string
	logger       *slog.Logger
}

func newService(cache *dnscache.Cache, processes func() []process.Process, snapshotPath string, logger *slog.Logger) *service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		cache:        cache,
		processes:    processes,
		snapshotPath: snapshotPath,
		logger:       logger,
	}
}

func (s *service) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("pong"), nil
}

func (s *service) Lookup(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.Int32Value, error) {
	label, err := process.NormalizeLabel(req.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	entry, ok := s.cache.Lookup(label)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no port registered for %q", label)
	}
	return wrapperspb.Int32(int32(entry.Port)), nil
}

func (s *service) Add(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	raw, port, err := registryv1.ParseAddRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	label, err := process.NormalizeLabel(raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if port <= 0 || port > process.MaxPort {
		return nil, status.Errorf(codes.InvalidArgument, "port %d out of range (1-%d)", port, process.MaxPort)
	}

	s.cache.Add(label, port)
	s.logger.Info("label registered", "label", label, "port", port)
	s.maybeSave()
	return &emptypb.Empty{}, nil
}

func (s *service) ListProcesses(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	var procs []process.Process
	if s.processes != nil {
		procs = s.processes()
	}
	return registryv1.ProcessesToList(procs), nil
}

// maybeSave performs a best-effort snapshot write if a path is configured.
func (s *service) maybeSave() {
	if s.snapshotPath == "" {
		return
	}
	if err := s.cache.SaveSnapshot(s.snapshotPath); err != nil {
		s.logger.Warn("registry snapshot failed", "path", s.snapshotPath, "error", err)
	}
}
