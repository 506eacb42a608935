package config

import (
	"errors"

	"devproc/internal/parser"
)

var (
	// ErrInvalidConfig marks a configuration that failed to parse or validate.
	ErrInvalidConfig = parser.ErrInvalidConfig
	// ErrConfigNotFound is returned when no configuration source matches.
	ErrConfigNotFound = errors.New("config not found")
)
