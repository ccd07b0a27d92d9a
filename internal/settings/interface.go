package settings

import (
	"context"

	"social-arch/internal/model"
)

// UseCase owns the single user settings record.
type UseCase interface {
	// Get returns the current settings.
	Get(ctx context.Context) (model.Settings, error)
	// Update validates s, persists it and makes it current.
	// Masked secrets (see MaskSecret) keep the stored value.
	Update(ctx context.Context, s model.Settings) (model.Settings, error)
}
