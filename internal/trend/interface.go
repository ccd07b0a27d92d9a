package trend

import (
	"context"

	"social-arch/internal/model"
)

// UseCase scans trends and keeps the last result.
type UseCase interface {
	// Scan runs a trend scan and replaces the cached snapshot.
	// An empty category uses the one selected in settings.
	Scan(ctx context.Context, category model.TrendCategory) (model.TrendSnapshot, error)
	// Current returns the cached snapshot.
	Current(ctx context.Context) model.TrendSnapshot
}
