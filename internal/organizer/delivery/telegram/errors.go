package telegram

import (
	"errors"

	"social-arch/internal/command"
	"social-arch/internal/organizer"
)

const (
	msgInvalidPosition = "❌ Неверный номер задачи. Используйте /list чтобы узнать номера."
	msgTaskUsage       = "⚠️ Напишите текст задачи: `/task Купить хлеб`"
	msgNoteUsage       = "⚠️ Напишите текст заметки: `/note Идея для рендера`"
	msgPersistFailed   = "⚠️ Не удалось сохранить изменения. Попробуйте ещё раз."
	msgGenericFailure  = "⚠️ Что-то пошло не так. Попробуйте ещё раз."
)

// errorMessage returns a user-facing message for err.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, command.ErrParse), errors.Is(err, organizer.ErrIndexOutOfRange):
		return msgInvalidPosition
	case errors.Is(err, organizer.ErrEmptyText):
		return msgTaskUsage
	case errors.Is(err, organizer.ErrPersistence):
		return msgPersistFailed
	default:
		return msgGenericFailure
	}
}
