package usecase

import (
	"context"
	"strings"

	"social-arch/internal/model"
	"social-arch/internal/organizer"
)

func (uc *implUseCase) AddNote(ctx context.Context, text string) (model.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Note{}, organizer.ErrEmptyText
	}

	note := model.Note{
		ID:        uc.newID(),
		Text:      text,
		CreatedAt: uc.now().UnixMilli(),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]model.Note, 0, len(uc.notes)+1)
	next = append(next, note)
	next = append(next, uc.notes...)
	if err := uc.commitNotes(ctx, next); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

func (uc *implUseCase) DeleteNote(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := indexOfNote(uc.notes, id)
	if i < 0 {
		return nil
	}

	next := make([]model.Note, 0, len(uc.notes)-1)
	next = append(next, uc.notes[:i]...)
	next = append(next, uc.notes[i+1:]...)
	return uc.commitNotes(ctx, next)
}

func (uc *implUseCase) ListNotes(ctx context.Context) []model.Note {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return cloneNotes(uc.notes)
}
