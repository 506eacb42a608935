package app

import (
	"log/slog"

	"devproc/internal/config"
)

// Options configures the top-level controller.
type Options struct {
	// ConfigPath points to the optional daemon options file (JSON).
	ConfigPath string
	// Resolver overrides the default config resolver.
	Resolver *config.Resolver
	Logger   *slog.Logger
}

// App exposes high-level operations that the CLI/TUI can reuse.
type App struct {
	cfgPath  string
	resolver *config.Resolver
	logger   *slog.Logger
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfgPath:  opts.ConfigPath,
		resolver: opts.Resolver,
		logger:   logger,
	}
}

// ConfigPath returns the configured options file path (if any).
func (a *App) ConfigPath() string {
	return a.cfgPath
}

// DaemonOptions loads the options file plus environment overrides.
func (a *App) DaemonOptions() (config.Options, error) {
	return config.LoadOptions(a.cfgPath)
}

func (a *App) configResolver() (*config.Resolver, error) {
	if a.resolver != nil {
		return a.resolver, nil
	}
	r, err := config.DefaultResolver()
	if err != nil {
		return nil, err
	}
	r.Logger = a.logger
	a.resolver = r
	return r, nil
}
