package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"devproc/internal/app"
	"devproc/internal/config"
	"devproc/internal/logging"
	"devproc/internal/power"
	"devproc/internal/process"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "devproc [command]",
	Short: "devproc: run a project's processes on stable ports",
	Long: `devproc reads a devproc.ini or Procfile, hands out ports to processes that ask for $PORT
and serves the resulting label -> port table from a small daemon.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.LoadOptions(configPath)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		level, format := opts.LogLevel, opts.LogFormat
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			format = logFormat
		}
		slog.SetDefault(logging.New(level, format, os.Stderr))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the JSON options file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

// ExitError carries the exit status for a failed command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// controllerAPI is what the commands need from app.App.
type controllerAPI interface {
	Ping(ctx context.Context, timeout time.Duration) (string, error)
	Lookup(ctx context.Context, label string, timeout time.Duration) (int, error)
	Add(ctx context.Context, params app.AddParams) error
	List(ctx context.Context, timeout time.Duration) ([]process.Process, error)
	Resolve(nameOrPath string) (*config.Config, error)
	Autorun(nameOrPath string) ([]process.Process, error)
	Status() (app.DaemonStatus, error)
	StopDaemon(force bool) error
	StartDaemon(params app.StartParams) (*app.DaemonHandle, error)
	SetupPower(store *power.Store, params app.PowerParams) (*power.Settings, error)
	RemovePower(store *power.Store) error
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{ConfigPath: configPath, Logger: slog.Default()})
}

func controller() controllerAPI {
	return controllerFactory()
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
