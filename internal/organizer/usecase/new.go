package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"social-arch/internal/model"
	"social-arch/internal/organizer"
	"social-arch/internal/repository"
	pkgLog "social-arch/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	// mu guards tasks and notes. Both slices are replaced, never mutated in place,
	// so a snapshot handed out under the lock stays valid after it is released.
	mu    sync.Mutex
	tasks []model.Task
	notes []model.Note

	now   func() time.Time
	newID func() string
}

// New creates the registry and loads the persisted tasks and notes.
func New(ctx context.Context, l pkgLog.Logger, repo repository.Repository) (organizer.UseCase, error) {
	uc := &implUseCase{
		l:     l,
		repo:  repo,
		now:   time.Now,
		newID: newID,
	}

	if err := uc.load(ctx); err != nil {
		return nil, err
	}
	return uc, nil
}

func (uc *implUseCase) load(ctx context.Context) error {
	var tasks []model.Task
	if err := uc.repo.Load(ctx, repository.KeyTasks, &tasks); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load tasks: %w", err)
	}

	var notes []model.Note
	if err := uc.repo.Load(ctx, repository.KeyNotes, &notes); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load notes: %w", err)
	}

	uc.tasks = tasks
	uc.notes = notes
	uc.l.Infof(ctx, "organizer.usecase.load: %d tasks, %d notes", len(tasks), len(notes))
	return nil
}

// newID returns a time-ordered UUIDv7, falling back to a random v4.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
