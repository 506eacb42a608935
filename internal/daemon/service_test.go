package daemon

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	registryv1 "devproc/api/registry/v1"
	"devproc/internal/dnscache"
	"devproc/internal/logging"
	"devproc/internal/process"
)

func newTestService(snapshotPath string) *service {
	procs := []process.Process{
		{Label: "web", Command: "rails s -p 9001", Port: 9001},
		{Label: "worker", Command: "sidekiq", Index: 1},
	}
	cache := dnscache.New(procs)
	return newService(cache, func() []process.Process { return procs }, snapshotPath, logging.Discard())
}

func TestServicePing(t *testing.T) {
	resp, err := newTestService("").Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.GetValue())
}

func TestServiceLookup(t *testing.T) {
	svc := newTestService("")

	resp, err := svc.Lookup(context.Background(), wrapperspb.String("web"))
	require.NoError(t, err)
	assert.EqualValues(t, 9001, resp.GetValue())

	_, err = svc.Lookup(context.Background(), wrapperspb.String("worker"))
	assert.Equal(t, codes.NotFound, status.Code(err), "processes without a port are not registered")

	_, err = svc.Lookup(context.Background(), wrapperspb.String(""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServiceAdd(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "ports.json")
	svc := newTestService(snap)
	ctx := context.Background()

	_, err := svc.Add(ctx, registryv1.NewAddRequest(" api ", 4000))
	require.NoError(t, err)

	resp, err := svc.Lookup(ctx, wrapperspb.String("api"))
	require.NoError(t, err)
	assert.EqualValues(t, 4000, resp.GetValue())

	restored := dnscache.New(nil)
	n, err := restored.LoadSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "snapshot is written after add")
}

func TestServiceAddRejectsInvalidInput(t *testing.T) {
	svc := newTestService("")
	ctx := context.Background()

	cases := map[string]*structpb.Struct{
		"empty request":  nil,
		"bad label":      registryv1.NewAddRequest("bad label", 4000),
		"long label":     registryv1.NewAddRequest(strings.Repeat("a", 65), 4000),
		"zero port":      registryv1.NewAddRequest("api", 0),
		"port too large": registryv1.NewAddRequest("api", 70000),
		"missing port": {Fields: map[string]*structpb.Value{
			"label": structpb.NewStringValue("api"),
		}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Add(ctx, req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
	_, ok := svc.cache.Lookup("api")
	assert.False(t, ok)
}

func TestServiceListProcesses(t *testing.T) {
	resp, err := newTestService("").ListProcesses(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)

	procs := registryv1.ProcessesFromList(resp)
	require.Len(t, procs, 2)
	assert.Equal(t, "web", procs[0].Label)
	assert.Equal(t, 9001, procs[0].Port)
	assert.Equal(t, "worker", procs[1].Label)
	assert.Equal(t, 1, procs[1].Index)
}
