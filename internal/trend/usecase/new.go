package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"social-arch/internal/generation"
	"social-arch/internal/model"
	"social-arch/internal/repository"
	"social-arch/internal/settings"
	"social-arch/internal/trend"
	pkgLog "social-arch/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	settings   settings.UseCase
	generation generation.UseCase

	// scanMu serializes scans; mu guards current.
	scanMu  sync.Mutex
	mu      sync.RWMutex
	current model.TrendSnapshot

	now func() time.Time
}

// New loads the cached snapshot and returns the trend usecase.
func New(ctx context.Context, l pkgLog.Logger, repo repository.Repository, settingsUC settings.UseCase, gen generation.UseCase) (trend.UseCase, error) {
	uc := &implUseCase{
		l:          l,
		repo:       repo,
		settings:   settingsUC,
		generation: gen,
		now:        time.Now,
	}

	if err := repo.Load(ctx, repository.KeyTrends, &uc.current); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load trends: %w", err)
	}
	return uc, nil
}

func (uc *implUseCase) Scan(ctx context.Context, category model.TrendCategory) (model.TrendSnapshot, error) {
	if category == "" {
		s, err := uc.settings.Get(ctx)
		if err != nil {
			return model.TrendSnapshot{}, err
		}
		category = s.TrendCategory
	}
	if !category.Valid() {
		return model.TrendSnapshot{}, fmt.Errorf("%w: %q", trend.ErrInvalidCategory, category)
	}

	uc.scanMu.Lock()
	defer uc.scanMu.Unlock()

	items, err := uc.generation.ScanTrends(ctx, category)
	if err != nil {
		return model.TrendSnapshot{}, err
	}
	if items == nil {
		items = []model.TrendItem{}
	}

	next := model.TrendSnapshot{
		Category:  category,
		Items:     items,
		ScannedAt: uc.now().UnixMilli(),
	}
	if err := uc.repo.Save(ctx, repository.KeyTrends, next); err != nil {
		uc.l.Errorf(ctx, "trend.usecase.Scan: %v", err)
		return model.TrendSnapshot{}, fmt.Errorf("%w: %v", trend.ErrPersistence, err)
	}

	uc.mu.Lock()
	uc.current = next
	uc.mu.Unlock()

	uc.l.Infof(ctx, "trend.usecase.Scan: %d items for %s", len(items), category)
	return next, nil
}

func (uc *implUseCase) Current(ctx context.Context) model.TrendSnapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := uc.current
	out.Items = append([]model.TrendItem(nil), uc.current.Items...)
	return out
}
