package usecase

import (
	"context"
	"fmt"
	"strings"

	"social-arch/config"
	"social-arch/internal/generation"
	"social-arch/internal/model"
	"social-arch/pkg/chatcompletion"
	"social-arch/pkg/llmprovider"
)

const customAPIModel = "gpt-3.5-turbo"

// newCustomProvider builds a chat/completions provider from the user settings.
func newCustomProvider(s model.Settings) (llmprovider.Provider, error) {
	url := strings.TrimSpace(s.CustomAPIURL)
	if url == "" {
		return nil, generation.ErrBackendNotConfigured
	}

	name, modelName := "custom", customAPIModel
	if s.LLMSource == model.LLMSourceLocal {
		name, modelName = "local", chatcompletion.DefaultModel
	}

	p, err := llmprovider.NewProvider(config.ProviderConfig{
		Name:    name,
		Enabled: true,
		APIKey:  s.CustomAPIKey,
		Model:   modelName,
		BaseURL: url,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrBackendNotConfigured, err)
	}
	return p, nil
}

func (uc *implUseCase) cloudReady() bool {
	return uc.cloud != nil && uc.cloud.Configured()
}

// run sends req to the backend selected in s and returns the response text.
func (uc *implUseCase) run(ctx context.Context, s model.Settings, req *llmprovider.Request) (string, error) {
	var (
		resp *llmprovider.Response
		err  error
	)

	if s.LLMSource == model.LLMSourceCloudGemini || s.LLMSource == "" {
		if !uc.cloudReady() {
			return "", generation.ErrBackendNotConfigured
		}
		resp, err = uc.cloud.GenerateContent(ctx, req)
	} else {
		var p llmprovider.Provider
		p, err = uc.newCustom(s)
		if err != nil {
			return "", err
		}
		resp, err = p.GenerateContent(ctx, req)
	}
	if err != nil {
		uc.l.Warnf(ctx, "generation.usecase.run: %s: %v", s.LLMSource, err)
		return "", fmt.Errorf("%w: %v", generation.ErrGeneration, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", generation.ErrGeneration)
	}
	return text, nil
}
