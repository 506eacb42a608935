package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"devproc/internal/process"
)

const (
	// DefaultBasePort is the first port handed out to $PORT processes.
	DefaultBasePort = 9001

	envBasePort    = "DEVPROC_BASE_PORT"
	envLogLevel    = "DEVPROC_LOG_LEVEL"
	envLogFormat   = "DEVPROC_LOG_FORMAT"
	envMetricsAddr = "DEVPROC_METRICS_ADDR"
	envWatchConfig = "DEVPROC_WATCH_CONFIG"
)

// Options aggregates the daemon's tunables.
type Options struct {
	BasePort    int
	LogLevel    string
	LogFormat   string
	MetricsAddr string // empty disables the metrics endpoint
	WatchConfig bool
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		BasePort:  DefaultBasePort,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadOptions builds Options from an optional JSON file path plus environment overrides.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	if path != "" {
		if err := applyFile(&opts, path); err != nil {
			return opts, fmt.Errorf("load options %s: %w", path, err)
		}
	}

	applyEnvOverrides(&opts)
	return opts, nil
}

type fileOptions struct {
	BasePort    *int   `json:"base_port"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
	MetricsAddr string `json:"metrics_addr"`
	WatchConfig *bool  `json:"watch_config"`
}

func applyFile(opts *Options, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw fileOptions
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.BasePort != nil {
		if err := validPort(*raw.BasePort); err != nil {
			return fmt.Errorf("base_port: %w", err)
		}
		opts.BasePort = *raw.BasePort
	}
	if raw.LogLevel != "" {
		opts.LogLevel = raw.LogLevel
	}
	if raw.LogFormat != "" {
		opts.LogFormat = raw.LogFormat
	}
	if raw.MetricsAddr != "" {
		opts.MetricsAddr = raw.MetricsAddr
	}
	if raw.WatchConfig != nil {
		opts.WatchConfig = *raw.WatchConfig
	}
	return nil
}

func applyEnvOverrides(opts *Options) {
	if v := os.Getenv(envBasePort); v != "" {
		port, err := strconv.Atoi(v)
		if err == nil {
			err = validPort(port)
		}
		if err != nil {
			slog.Warn("ignoring invalid environment value", "var", envBasePort, "value", v, "error", err)
		} else {
			opts.BasePort = port
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		opts.LogLevel = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		opts.LogFormat = v
	}
	if v := os.Getenv(envMetricsAddr); v != "" {
		opts.MetricsAddr = v
	}
	if v := os.Getenv(envWatchConfig); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("ignoring invalid environment value", "var", envWatchConfig, "value", v, "error", err)
		} else {
			opts.WatchConfig = watch
		}
	}
}

func validPort(port int) error {
	if port <= 0 || port > process.MaxPort {
		return fmt.Errorf("port %d out of range", port)
	}
	return nil
}
