package config

import "errors"

// Sentinel errors for configuration failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrInvalidConfig indicates the configuration is syntactically
	// or semantically invalid (bad YAML, unknown format, threshold
	// out of range).
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
