package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"devproc/internal/app"
	"devproc/internal/config"
	"devproc/internal/logging"
)

func main() {
	optionsPath := flag.String("config", "", "Path to JSON options file")
	procs := flag.String("procs", "", "Process configuration path or name (default devproc.ini, then Procfile)")
	force := flag.Bool("force", false, "Stop an existing daemon before starting")
	flag.Parse()

	opts, err := config.LoadOptions(*optionsPath)
	if err != nil {
		slog.Error("failed to load options", "error", err)
		os.Exit(2)
	}
	logger := logging.New(opts.LogLevel, opts.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	controller := app.New(app.Options{ConfigPath: *optionsPath, Logger: logger})

	st, err := controller.Status()
	if st.Running {
		if !*force {
			if err != nil {
				logger.Error("daemon appears running but pid check failed", "error", err)
				os.Exit(1)
			}
			logger.Info("daemon is already running, use --force to restart", "pid", st.PID)
			return
		}
		logger.Info("stopping existing daemon")
		if err := controller.StopDaemon(true); err != nil {
			logger.Error("failed to stop running daemon", "error", err)
			os.Exit(1)
		}
	}

	handle, err := controller.StartDaemon(app.StartParams{Config: *procs})
	if err != nil {
		logger.Error("failed to start daemon", "error", err)
		os.Exit(1)
	}
	logger.Info("daemon ready, press Ctrl+C to stop", "pid", os.Getpid())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info("stopping daemon")
	if err := handle.Close(); err != nil {
		logger.Error("error shutting down daemon", "error", err)
		os.Exit(1)
	}
	logger.Info("daemon stopped")
}
