package usecase

import (
	"context"
	"fmt"
	"strings"

	"social-arch/internal/generation"
	"social-arch/internal/model"
	"social-arch/pkg/llmprovider"
)

func (uc *implUseCase) Generate(ctx context.Context, prompt, system string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", generation.ErrGeneration)
	}
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return uc.run(ctx, s, llmprovider.NewTextRequest(prompt, system))
}

func (uc *implUseCase) GenerateIdea(ctx context.Context) (string, error) {
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	system := ""
	if s.LLMSource != model.LLMSourceCloudGemini {
		system = ideaSystem
	}
	return uc.run(ctx, s, llmprovider.NewTextRequest(ideaPrompt(s.TargetLanguage), system))
}

func (uc *implUseCase) Configured(ctx context.Context) bool {
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return false
	}
	if s.LLMSource == model.LLMSourceCloudGemini || s.LLMSource == "" {
		return uc.cloudReady()
	}
	_, err = uc.newCustom(s)
	return err == nil
}
