package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	registryv1 "devproc/api/registry/v1"
)

func TestAppAddRejectsInvalidInput(t *testing.T) {
	stubDaemon(t, true, nil)
	app := New(Options{})

	if err := app.Add(context.Background(), AddParams{Label: "api", Port: 0, Timeout: time.Second}); err == nil || err.Error() != "invalid port 0" {
		t.Fatalf("expected invalid port error, got %v", err)
	}
	if err := app.Add(context.Background(), AddParams{Label: "api", Port: 70000, Timeout: time.Second}); err == nil {
		t.Fatal("expected out of range port error")
	}
	if err := app.Add(context.Background(), AddParams{Label: "", Port: 80, Timeout: time.Second}); err == nil {
		t.Fatal("expected empty label error")
	}
}

func TestAppAddDaemonNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)
	app := New(Options{})
	err := app.Add(context.Background(), AddParams{Label: "api", Port: 4000, Timeout: time.Second})
	if err == nil || err.Error() != "daemon is not running" {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}

func TestAppAddDialError(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (registryv1.NameRegistryClient, io.Closer, error) {
		return nil, nil, errors.New("dial failed")
	})
	app := New(Options{})
	err := app.Add(context.Background(), AddParams{Label: "api", Port: 4000, Timeout: time.Second})
	if err == nil || err.Error() != "connect to daemon: dial failed" {
		t.Fatalf("expected wrapped dial error, got %v", err)
	}
}

func TestAppAddSendsRequest(t *testing.T) {
	var captured *structpb.Struct
	stubInvoke(t, func(method string, args, reply interface{}) error {
		if method != registryv1.NameRegistry_Add_FullMethodName {
			t.Fatalf("unexpected method %s", method)
		}
		captured = args.(*structpb.Struct)
		return nil
	})

	app := New(Options{})
	if err := app.Add(context.Background(), AddParams{Label: "api", Port: 4000, Timeout: time.Second}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	label, port, err := registryv1.ParseAddRequest(captured)
	if err != nil {
		t.Fatalf("captured request is malformed: %v", err)
	}
	if label != "api" || port != 4000 {
		t.Fatalf("unexpected request %s=%d", label, port)
	}
}

func TestAppAddRejectedByDaemon(t *testing.T) {
	stubInvoke(t, func(method string, args, reply interface{}) error {
		return status.Error(codes.InvalidArgument, "port out of range")
	})

	app := New(Options{})
	err := app.Add(context.Background(), AddParams{Label: "api", Port: 4000, Timeout: time.Second})
	if err == nil || !strings.Contains(err.Error(), "port out of range") {
		t.Fatalf("expected daemon rejection, got %v", err)
	}
}
