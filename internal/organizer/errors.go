package organizer

import "errors"

// Domain-specific errors for the organizer package.
var (
	ErrEmptyText       = errors.New("text is empty")
	ErrIndexOutOfRange = errors.New("task position out of range")
	ErrPersistence     = errors.New("failed to persist registry")
)
