package trend

import "errors"

var (
	ErrInvalidCategory = errors.New("unknown trend category")
	ErrPersistence     = errors.New("failed to persist trends")
)
