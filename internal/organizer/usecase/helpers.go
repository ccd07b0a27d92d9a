package usecase

import (
	"context"
	"fmt"

	"social-arch/internal/model"
	"social-arch/internal/organizer"
	"social-arch/internal/repository"
)

// commitTasks persists next and publishes it. Must be called with uc.mu held.
func (uc *implUseCase) commitTasks(ctx context.Context, next []model.Task) error {
	if err := uc.repo.Save(ctx, repository.KeyTasks, next); err != nil {
		uc.l.Errorf(ctx, "organizer.usecase.commitTasks: %v", err)
		return fmt.Errorf("%w: %v", organizer.ErrPersistence, err)
	}
	uc.tasks = next
	return nil
}

// commitNotes persists next and publishes it. Must be called with uc.mu held.
func (uc *implUseCase) commitNotes(ctx context.Context, next []model.Note) error {
	if err := uc.repo.Save(ctx, repository.KeyNotes, next); err != nil {
		uc.l.Errorf(ctx, "organizer.usecase.commitNotes: %v", err)
		return fmt.Errorf("%w: %v", organizer.ErrPersistence, err)
	}
	uc.notes = next
	return nil
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

func cloneNotes(notes []model.Note) []model.Note {
	out := make([]model.Note, len(notes))
	copy(out, notes)
	return out
}

func activeOf(tasks []model.Task) []model.Task {
	active := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			active = append(active, t)
		}
	}
	return active
}

func indexOfTask(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func indexOfNote(notes []model.Note, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
