package parser

import "errors"

// ErrInvalidConfig is returned for any structural or validation failure.
var ErrInvalidConfig = errors.New("invalid config")
