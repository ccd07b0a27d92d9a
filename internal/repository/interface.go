package repository

import "context"

// Repository is the durable key/value store backing every persisted record.
// Values are JSON documents; a Save replaces the whole record in one step.
type Repository interface {
	// Load decodes the record stored under key into v. Returns ErrNotFound when absent.
	Load(ctx context.Context, key string, v any) error
	// Save encodes v and replaces the record stored under key.
	Save(ctx context.Context, key string, v any) error
	// Close releases the underlying storage.
	Close() error
}
