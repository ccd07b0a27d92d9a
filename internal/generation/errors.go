package generation

import "errors"

var (
	ErrGeneration           = errors.New("generation failed")
	ErrBackendNotConfigured = errors.New("generation backend not configured")
)
