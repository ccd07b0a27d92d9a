package repository

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidKey    = errors.New("invalid record key")
	ErrUnknownDriver = errors.New("unknown storage driver")
)
