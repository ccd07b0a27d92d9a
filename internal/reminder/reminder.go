// Package reminder decides when the daily task digest is due and renders it.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"social-arch/internal/model"
	"social-arch/internal/settings"
	pkgLog "social-arch/pkg/log"
	"social-arch/pkg/telegram"
)

const dateLayout = "2006-01-02"

// Watermark stores the local date the reminder last fired.
// *syncstate.Store satisfies it.
type Watermark interface {
	LastReminderDate() string
	SetLastReminderDate(ctx context.Context, date string) error
}

// Reminder is a fired digest ready to be sent.
type Reminder struct {
	Date string
	Text string
}

// Scheduler fires the digest at most once per local date.
type Scheduler struct {
	l   pkgLog.Logger
	loc *time.Location
	wm  Watermark
}

// NewScheduler returns a scheduler evaluating wall clock time in loc.
// A nil loc means time.Local.
func NewScheduler(l pkgLog.Logger, loc *time.Location, wm Watermark) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{l: l, loc: loc, wm: wm}
}

// MaybeFire returns the digest when reminders are enabled, now matches the
// configured HH:MM exactly and the digest has not fired today.
// The watermark is persisted before the digest is returned; if that fails
// nothing fires. Missed minutes are not caught up.
func (s *Scheduler) MaybeFire(ctx context.Context, now time.Time, cfg model.Settings, active []model.Task) (Reminder, bool, error) {
	if !cfg.EnableDailyReminders {
		return Reminder{}, false, nil
	}

	hour, minute, err := settings.ParseClock(cfg.DailyReminderTime)
	if err != nil {
		s.l.Warnf(ctx, "reminder.MaybeFire: %v", err)
		return Reminder{}, false, nil
	}

	local := now.In(s.loc)
	if local.Hour() != hour || local.Minute() != minute {
		return Reminder{}, false, nil
	}

	today := local.Format(dateLayout)
	if s.wm.LastReminderDate() == today {
		return Reminder{}, false, nil
	}

	if err := s.wm.SetLastReminderDate(ctx, today); err != nil {
		return Reminder{}, false, fmt.Errorf("advance reminder watermark: %w", err)
	}

	return Reminder{Date: today, Text: Render(active)}, true, nil
}

// Render builds the digest text for the active tasks.
func Render(active []model.Task) string {
	if len(active) == 0 {
		return "🌅 *Доброе утро!* У вас пока нет задач на сегодня."
	}

	var b strings.Builder
	b.WriteString("🌅 *Доброе утро! Ваши задачи на сегодня:*\n\n")
	for i, t := range active {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("▫️ ")
		b.WriteString(telegram.EscapeMarkdown(t.Text))
	}
	return b.String()
}
