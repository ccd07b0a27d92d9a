package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"social-arch/internal/model"
	"social-arch/internal/repository"
	"social-arch/internal/settings"
	pkgLog "social-arch/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	mu      sync.RWMutex
	current model.Settings
}

// New loads the settings record, falling back to defaults overlaid with seed.
// Stored fields are merged over the defaults so records written by older
// versions keep working.
func New(ctx context.Context, l pkgLog.Logger, repo repository.Repository, seed settings.Seed) (settings.UseCase, error) {
	uc := &implUseCase{l: l, repo: repo}

	current := model.DefaultSettings()
	var raw json.RawMessage
	err := repo.Load(ctx, repository.KeySettings, &raw)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		current.TelegramBotToken = seed.TelegramBotToken
		current.TelegramChatID = seed.TelegramChatID
		l.Infof(ctx, "settings.usecase.New: no stored settings, using defaults")
	case err != nil:
		return nil, fmt.Errorf("load settings: %w", err)
	default:
		if err := json.Unmarshal(raw, &current); err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
		// Deployment config still fills gaps the UI never set.
		if current.TelegramBotToken == "" {
			current.TelegramBotToken = seed.TelegramBotToken
		}
		if current.TelegramChatID == "" {
			current.TelegramChatID = seed.TelegramChatID
		}
	}

	uc.current = current
	return uc, nil
}

func (uc *implUseCase) Get(ctx context.Context) (model.Settings, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current, nil
}

func (uc *implUseCase) Update(ctx context.Context, s model.Settings) (model.Settings, error) {
	if err := validate(&s); err != nil {
		return model.Settings{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Masked secrets come back from the UI unchanged; resolve them against the record we hold.
	if settings.IsMasked(s.CustomAPIKey) {
		s.CustomAPIKey = uc.current.CustomAPIKey
	}
	if settings.IsMasked(s.TelegramBotToken) {
		s.TelegramBotToken = uc.current.TelegramBotToken
	}

	if err := uc.repo.Save(ctx, repository.KeySettings, s); err != nil {
		uc.l.Errorf(ctx, "settings.usecase.Update: %v", err)
		return model.Settings{}, fmt.Errorf("%w: %v", settings.ErrPersistence, err)
	}
	uc.current = s
	return s, nil
}

// validate rejects values the loop cannot act on and fills empty enums.
func validate(s *model.Settings) error {
	if s.DailyReminderTime == "" {
		s.DailyReminderTime = model.DefaultSettings().DailyReminderTime
	}
	if _, _, err := settings.ParseClock(s.DailyReminderTime); err != nil {
		return err
	}

	if s.LLMSource == "" {
		s.LLMSource = model.LLMSourceCloudGemini
	}
	if !s.LLMSource.Valid() {
		return fmt.Errorf("%w: %q", settings.ErrInvalidLLMSource, s.LLMSource)
	}

	if s.TrendCategory == "" {
		s.TrendCategory = model.TrendCategoryGeneral
	}
	if !s.TrendCategory.Valid() {
		return fmt.Errorf("%w: %q", settings.ErrInvalidCategory, s.TrendCategory)
	}
	return nil
}
