package telegram

import (
	"context"
	"time"

	"social-arch/internal/command"
	"social-arch/internal/generation"
	"social-arch/internal/organizer"
	"social-arch/internal/trend"
	pkgLog "social-arch/pkg/log"
)

// Sender delivers replies to a chat. *pkgTelegram.Bot satisfies it.
type Sender interface {
	SendMarkdown(ctx context.Context, chatID string, text string) error
}

// Handler applies remote chat commands to the organizer.
type Handler interface {
	// Dispatch applies exactly one effect for cmd and replies to chatID through sender.
	// Reply failures are logged and never returned.
	Dispatch(ctx context.Context, sender Sender, chatID string, cmd command.Command)
	// Wait blocks until background generation started by Dispatch has finished.
	Wait()
}

// New creates a new Telegram command handler.
func New(
	l pkgLog.Logger,
	uc organizer.UseCase,
	trendUC trend.UseCase,
	generationUC generation.UseCase,
	startedAt time.Time,
) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		trendUC:      trendUC,
		generationUC: generationUC,
		startedAt:    startedAt,
		now:          time.Now,
	}
}
