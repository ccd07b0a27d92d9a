package organizer

import (
	"context"

	"social-arch/internal/model"
)

// UseCase is the Task/Note Registry. Every mutation is persisted before it becomes
// visible; a failed write leaves the registry unchanged and returns ErrPersistence.
type UseCase interface {
	// AddTask prepends a new task. Whitespace-only text fails with ErrEmptyText.
	AddTask(ctx context.Context, input AddTaskInput) (model.Task, error)
	// AddNote prepends a new note. Whitespace-only text fails with ErrEmptyText.
	AddNote(ctx context.Context, text string) (model.Note, error)
	// ToggleTask flips the completed flag. Unknown ids are a no-op.
	ToggleTask(ctx context.Context, id string) error
	// CompleteTaskByPosition completes the pos-th (1-based) active task.
	CompleteTaskByPosition(ctx context.Context, pos int) (model.Task, error)
	// DeleteTask removes a task. Unknown ids are a no-op.
	DeleteTask(ctx context.Context, id string) error
	// DeleteNote removes a note. Unknown ids are a no-op.
	DeleteNote(ctx context.Context, id string) error
	// ResetDailyTasks reactivates completed daily tasks and returns how many changed.
	ResetDailyTasks(ctx context.Context) (int, error)

	ListTasks(ctx context.Context) []model.Task
	ActiveTasks(ctx context.Context) []model.Task
	ListNotes(ctx context.Context) []model.Note
	// ListFormatted renders the task list as a Telegram Markdown message.
	ListFormatted(ctx context.Context) string
}
