package settings

import "errors"

var (
	ErrInvalidReminderTime = errors.New("daily reminder time must be HH:MM")
	ErrInvalidLLMSource    = errors.New("unknown llm source")
	ErrInvalidCategory     = errors.New("unknown trend category")
	ErrPersistence         = errors.New("failed to persist settings")
)
