package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"devproc/internal/app"
	"devproc/internal/process"
)

func TestLookupPrintsPort(t *testing.T) {
	withController(t, &stubController{
		lookupFunc: func(ctx context.Context, label string, timeout time.Duration) (int, error) {
			if label != "web" {
				t.Fatalf("unexpected label %q", label)
			}
			return 9001, nil
		},
	})
	buf := withOutput(t, cmdLookup)

	if err := cmdLookup.RunE(cmdLookup, []string{"web"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "9001\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestLookupMissingLabelExitCode(t *testing.T) {
	withController(t, &stubController{
		lookupFunc: func(ctx context.Context, label string, timeout time.Duration) (int, error) {
			return 0, fmt.Errorf("%w: %s", app.ErrLabelNotFound, label)
		},
	})

	err := cmdLookup.RunE(cmdLookup, []string{"api"})
	if code := exitCode(err); code != 3 {
		t.Fatalf("expected exit code 3, got %d (%v)", code, err)
	}
}

func TestAddParsesPort(t *testing.T) {
	var got app.AddParams
	withController(t, &stubController{
		addFunc: func(ctx context.Context, params app.AddParams) error {
			got = params
			return nil
		},
	})
	buf := withOutput(t, cmdAdd)

	if err := cmdAdd.RunE(cmdAdd, []string{"api", "4000"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got.Label != "api" || got.Port != 4000 || got.Timeout != rpcTimeout() {
		t.Fatalf("unexpected params %+v", got)
	}
	if buf.String() != "api -> 4000\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestAddRejectsNonNumericPort(t *testing.T) {
	withController(t, &stubController{})

	err := cmdAdd.RunE(cmdAdd, []string{"api", "http"})
	if code := exitCode(err); code != 2 {
		t.Fatalf("expected usage exit code, got %d (%v)", code, err)
	}
}

func TestListPrintsTable(t *testing.T) {
	withController(t, &stubController{
		listFunc: func(ctx context.Context, timeout time.Duration) ([]process.Process, error) {
			return []process.Process{
				{Label: "web", Command: "rails s -p 9001", Port: 9001},
				{Label: "worker", Command: "sidekiq", DisableAutorun: true},
			}, nil
		},
	})
	buf := withOutput(t, cmdList)

	if err := cmdList.RunE(cmdList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %q", buf.String())
	}
	if fields := strings.Fields(lines[1]); fields[0] != "web" || fields[1] != "9001" || fields[2] != "true" {
		t.Fatalf("unexpected web row %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); fields[0] != "worker" || fields[1] != "-" || fields[2] != "false" {
		t.Fatalf("unexpected worker row %q", lines[2])
	}
}

func TestListEmpty(t *testing.T) {
	withController(t, &stubController{
		listFunc: func(ctx context.Context, timeout time.Duration) ([]process.Process, error) {
			return nil, nil
		},
	})
	buf := withOutput(t, cmdList)

	if err := cmdList.RunE(cmdList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if buf.String() != "No processes configured\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestAutorunPassesConfigArgument(t *testing.T) {
	var asked string
	withController(t, &stubController{
		autorunFunc: func(nameOrPath string) ([]process.Process, error) {
			asked = nameOrPath
			return []process.Process{{Label: "web", Command: "serve", Port: 9001, Sleep: 2}}, nil
		},
	})
	buf := withOutput(t, cmdAutorun)

	if err := cmdAutorun.RunE(cmdAutorun, []string{"Procfile.dev"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if asked != "Procfile.dev" {
		t.Fatalf("unexpected config argument %q", asked)
	}
	if !strings.Contains(buf.String(), "web") || !strings.Contains(buf.String(), "2s") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestExitCodeDefaultsToOne(t *testing.T) {
	if code := exitCode(errors.New("boom")); code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if code := exitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: 4, Message: "x"})); code != 4 {
		t.Fatalf("expected wrapped code 4, got %d", code)
	}
}
