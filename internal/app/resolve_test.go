package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"devproc/internal/config"
	"devproc/internal/logging"
	"devproc/internal/power"
)

func newResolverApp(t *testing.T, optionsJSON string) (*App, string) {
	t.Helper()
	t.Setenv("DEVPROC_BASE_PORT", "")
	work := t.TempDir()
	global := t.TempDir()

	var cfgPath string
	if optionsJSON != "" {
		cfgPath = filepath.Join(t.TempDir(), "devproc.json")
		if err := os.WriteFile(cfgPath, []byte(optionsJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	r := &config.Resolver{
		WorkDir:    work,
		HomeDir:    t.TempDir(),
		GlobalDir:  global,
		Extensions: config.DefaultExtensions,
		Power:      power.NewStore(global),
		Logger:     logging.Discard(),
		Exit:       func(code int) { t.Fatalf("unexpected exit %d", code) },
	}
	return New(Options{ConfigPath: cfgPath, Resolver: r, Logger: logging.Discard()}), work
}

func TestAppResolveUsesConfiguredBasePort(t *testing.T) {
	app, work := newResolverApp(t, `{"base_port": 7000}`)
	ini := "[web]\ncommand = serve --port $PORT\n\n[api]\ncommand = api $PORT\n"
	if err := os.WriteFile(filepath.Join(work, config.DefaultININame), []byte(ini), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := app.Resolve("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	web, _ := cfg.Process("web")
	api, _ := cfg.Process("api")
	if web.Port != 7000 || api.Port != 7001 {
		t.Fatalf("unexpected ports web=%d api=%d", web.Port, api.Port)
	}
	if web.Command != "serve --port 7000" {
		t.Fatalf("port token not substituted: %q", web.Command)
	}
}

func TestAppAutorunOrdersByIndex(t *testing.T) {
	app, work := newResolverApp(t, "")
	ini := "[b]\ncommand = b\nindex = 2\n\n[a]\ncommand = a\nindex = 1\n\n[off]\ncommand = off\ndisable_autorun = true\n"
	if err := os.WriteFile(filepath.Join(work, "dev.ini"), []byte(ini), 0o644); err != nil {
		t.Fatal(err)
	}

	procs, err := app.Autorun("dev")
	if err != nil {
		t.Fatalf("autorun: %v", err)
	}
	if len(procs) != 2 || procs[0].Label != "a" || procs[1].Label != "b" {
		t.Fatalf("unexpected autorun order: %+v", procs)
	}
}

func TestAppResolveNamedConfigMissing(t *testing.T) {
	app, _ := newResolverApp(t, "")
	if _, err := app.Resolve("nope"); !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestAppResolveBadOptionsFile(t *testing.T) {
	app, _ := newResolverApp(t, `{"base_port": -1}`)
	if _, err := app.Resolve(""); err == nil {
		t.Fatal("expected options error")
	}
}
