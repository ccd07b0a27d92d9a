package generation

import (
	"context"

	"social-arch/internal/model"
)

// UseCase produces text from the backend selected in settings.
type UseCase interface {
	// Generate runs a single prompt with an optional system instruction.
	Generate(ctx context.Context, prompt, system string) (string, error)
	// GenerateIdea returns one content idea in the target language.
	GenerateIdea(ctx context.Context) (string, error)
	// ScanTrends searches current trends for category and stamps every item with it.
	ScanTrends(ctx context.Context, category model.TrendCategory) ([]model.TrendItem, error)
	// Configured reports whether the selected backend can be reached at all.
	Configured(ctx context.Context) bool
}
