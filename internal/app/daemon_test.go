package app

import (
	"errors"
	"os"
	"testing"
)

func TestAppStatusNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)
	daemonRunningPID = func() (int, error) {
		t.Fatal("pid must not be read when the daemon is down")
		return 0, nil
	}

	st, err := New(Options{}).Status()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Running || st.PID != 0 {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestAppStatusRunning(t *testing.T) {
	stubDaemon(t, true, nil)
	daemonRunningPID = func() (int, error) { return 321, nil }

	st, err := New(Options{}).Status()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Running || st.PID != 321 {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestAppStatusMissingPIDFile(t *testing.T) {
	stubDaemon(t, true, nil)
	daemonRunningPID = func() (int, error) { return 0, os.ErrNotExist }

	st, err := New(Options{}).Status()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected pid read error, got %v", err)
	}
	if !st.Running {
		t.Fatalf("daemon still reported as running, got %+v", st)
	}
}

func TestDaemonHandleNilClose(t *testing.T) {
	var h *DaemonHandle
	if err := h.Close(); err != nil {
		t.Fatalf("nil handle close: %v", err)
	}
	if h.Server() != nil {
		t.Fatal("nil handle has no server")
	}
}
