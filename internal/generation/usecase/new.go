package usecase

import (
	"context"

	"social-arch/internal/generation"
	"social-arch/internal/model"
	"social-arch/internal/settings"
	"social-arch/pkg/llmprovider"
	pkgLog "social-arch/pkg/log"
)

// Cloud is the provider chain used for the Cloud Gemini backend and the search bridge.
// *llmprovider.Manager satisfies it.
type Cloud interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Configured() bool
}

type implUseCase struct {
	l        pkgLog.Logger
	settings settings.UseCase
	cloud    Cloud

	// newCustom builds the OpenAI-compatible provider for Local LLM and Custom API.
	newCustom func(s model.Settings) (llmprovider.Provider, error)
}

// New returns a generation usecase. cloud may be nil when no Gemini key is configured.
func New(l pkgLog.Logger, settingsUC settings.UseCase, cloud Cloud) generation.UseCase {
	return &implUseCase{
		l:         l,
		settings:  settingsUC,
		cloud:     cloud,
		newCustom: newCustomProvider,
	}
}
