package usecase

import (
	"context"
	"strings"

	"social-arch/internal/model"
	"social-arch/internal/organizer"
)

func (uc *implUseCase) AddTask(ctx context.Context, input organizer.AddTaskInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, organizer.ErrEmptyText
	}

	task := model.Task{
		ID:        uc.newID(),
		Text:      text,
		IsDaily:   input.IsDaily,
		CreatedAt: uc.now().UnixMilli(),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]model.Task, 0, len(uc.tasks)+1)
	next = append(next, task)
	next = append(next, uc.tasks...)
	if err := uc.commitTasks(ctx, next); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (uc *implUseCase) ToggleTask(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := indexOfTask(uc.tasks, id)
	if i < 0 {
		return nil
	}

	next := cloneTasks(uc.tasks)
	next[i].Completed = !next[i].Completed
	return uc.commitTasks(ctx, next)
}

func (uc *implUseCase) CompleteTaskByPosition(ctx context.Context, pos int) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Positions always refer to the current active list, never a cached one.
	active := activeOf(uc.tasks)
	if pos <= 0 || pos > len(active) {
		return model.Task{}, organizer.ErrIndexOutOfRange
	}
	target := active[pos-1]

	next := cloneTasks(uc.tasks)
	i := indexOfTask(next, target.ID)
	next[i].Completed = true
	if err := uc.commitTasks(ctx, next); err != nil {
		return model.Task{}, err
	}
	return next[i], nil
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := indexOfTask(uc.tasks, id)
	if i < 0 {
		return nil
	}

	next := make([]model.Task, 0, len(uc.tasks)-1)
	next = append(next, uc.tasks[:i]...)
	next = append(next, uc.tasks[i+1:]...)
	return uc.commitTasks(ctx, next)
}

func (uc *implUseCase) ResetDailyTasks(ctx context.Context) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := cloneTasks(uc.tasks)
	reset := 0
	for i := range next {
		if next[i].IsDaily && next[i].Completed {
			next[i].Completed = false
			reset++
		}
	}
	if reset == 0 {
		return 0, nil
	}

	if err := uc.commitTasks(ctx, next); err != nil {
		return 0, err
	}
	return reset, nil
}

func (uc *implUseCase) ListTasks(ctx context.Context) []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return cloneTasks(uc.tasks)
}

func (uc *implUseCase) ActiveTasks(ctx context.Context) []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return activeOf(uc.tasks)
}
