package engine

import "errors"

// Sentinel errors for engine failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrInvalidConfidence indicates a mapping confidence outside the
	// [0, 1] range.
	ErrInvalidConfidence = errors.New("engine: confidence must be between 0 and 1")

	// ErrFrameworkNotFound indicates an analysis was requested for an
	// unregistered framework ID.
	ErrFrameworkNotFound = errors.New("engine: framework not found")
)
