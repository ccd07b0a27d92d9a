// Package syncloop drives the periodic tick: poll the Telegram bot for
// commands, dispatch them, then run the daily maintenance and reminder.
package syncloop

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"social-arch/internal/command"
	"social-arch/internal/model"
	"social-arch/internal/organizer"
	tgDelivery "social-arch/internal/organizer/delivery/telegram"
	"social-arch/internal/reminder"
	"social-arch/internal/settings"
	"social-arch/internal/syncstate"
	pkgLog "social-arch/pkg/log"
	pkgTelegram "social-arch/pkg/telegram"
)

const dateLayout = "2006-01-02"

// Loop is the single-flight sync loop.
type Loop struct {
	l         pkgLog.Logger
	settings  settings.UseCase
	organizer organizer.UseCase
	handler   tgDelivery.Handler
	bots      *pkgTelegram.Clients
	state     *syncstate.Store
	reminder  *reminder.Scheduler
	opts      Options
	now       func() time.Time

	// tickMu is held for the whole tick; TryLock makes overlapping ticks skip.
	tickMu sync.Mutex

	statsMu  sync.Mutex
	running  bool
	lastTick time.Time
	ran      int64
	skipped  int64
	botID    string
}

func New(
	l pkgLog.Logger,
	settingsUC settings.UseCase,
	organizerUC organizer.UseCase,
	handler tgDelivery.Handler,
	bots *pkgTelegram.Clients,
	state *syncstate.Store,
	opts Options,
) *Loop {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Loop{
		l:         l,
		settings:  settingsUC,
		organizer: organizerUC,
		handler:   handler,
		bots:      bots,
		state:     state,
		reminder:  reminder.NewScheduler(l, opts.Location, state),
		opts:      opts,
		now:       time.Now,
	}
}

// Run ticks every Options.Interval until ctx is cancelled. It never returns early on errors.
func (lp *Loop) Run(ctx context.Context) {
	lp.setRunning(true)
	defer lp.setRunning(false)

	ticker := time.NewTicker(lp.opts.Interval)
	defer ticker.Stop()

	lp.l.Infof(ctx, "syncloop.Run: started, interval %s, poll timeout %s", lp.opts.Interval, lp.opts.PollTimeout)
	for {
		select {
		case <-ctx.Done():
			lp.l.Infof(ctx, "syncloop.Run: stopped")
			return
		case <-ticker.C:
			lp.Tick(ctx)
		}
	}
}

// Tick runs one pass. It returns false, doing nothing, when another tick is in flight.
func (lp *Loop) Tick(ctx context.Context) (ran bool) {
	if !lp.tickMu.TryLock() {
		lp.statsMu.Lock()
		lp.skipped++
		lp.statsMu.Unlock()
		lp.l.Debugf(ctx, "syncloop.Tick: previous tick still running, skipped")
		return false
	}
	defer lp.tickMu.Unlock()
	ran = true

	defer func() {
		if r := recover(); r != nil {
			lp.l.Errorf(ctx, "syncloop.Tick: panic recovered: %v\n%s", r, debug.Stack())
		}
	}()

	now := lp.now()
	lp.statsMu.Lock()
	lp.ran++
	lp.lastTick = now
	lp.statsMu.Unlock()

	s, err := lp.settings.Get(ctx)
	if err != nil {
		lp.l.Errorf(ctx, "syncloop.Tick: read settings: %v", err)
		return true
	}

	if err := lp.commandPhase(ctx, s.TelegramBotToken); err != nil {
		lp.l.Warnf(ctx, "syncloop.Tick: command phase: %v", err)
	}
	// The command phase may have taken a while; the reminder window is judged on the current clock.
	lp.dailyPhase(ctx, lp.now(), s)
	return true
}

// commandPhase polls once and dispatches the batch in update order.
// The cursor is persisted before any dispatch, so a crash can lose a command but never repeat one.
func (lp *Loop) commandPhase(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	bot := lp.bots.For(token)
	botID := pkgTelegram.BotID(token)
	lp.statsMu.Lock()
	lp.botID = botID
	lp.statsMu.Unlock()

	updates, err := bot.GetUpdates(ctx, lp.state.Cursor(botID)+1, lp.opts.PollTimeout)
	if err != nil {
		switch {
		case pkgTelegram.IsConflict(err):
			// A registered webhook blocks getUpdates.
			if derr := bot.DeleteWebhook(ctx); derr != nil {
				lp.l.Warnf(ctx, "syncloop.commandPhase: delete webhook: %v", derr)
			}
		case pkgTelegram.IsUnauthorized(err):
			lp.l.Warnf(ctx, "syncloop.commandPhase: bot %s token rejected by Telegram, update it in settings", botID)
		}
		return fmt.Errorf("get updates: %w", err)
	}
	if len(updates) == 0 {
		return nil
	}

	maxID := updates[0].UpdateID
	for _, u := range updates[1:] {
		if u.UpdateID > maxID {
			maxID = u.UpdateID
		}
	}
	if err := lp.state.SetCursor(ctx, botID, maxID); err != nil {
		return fmt.Errorf("persist cursor, batch of %d dropped for this tick: %w", len(updates), err)
	}

	for _, u := range updates {
		lp.dispatch(ctx, bot, u)
	}
	return nil
}

// dispatch hands one update to the handler. A panic is contained to that update.
func (lp *Loop) dispatch(ctx context.Context, bot *pkgTelegram.Bot, u pkgTelegram.Update) {
	defer func() {
		if r := recover(); r != nil {
			lp.l.Errorf(ctx, "syncloop.dispatch: update %d panicked: %v\n%s", u.UpdateID, r, debug.Stack())
		}
	}()

	msg := u.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return
	}
	if msg.From != nil && msg.From.IsBot {
		return
	}

	cmd := command.Parse(msg.Text)
	if cmd.Kind == command.None {
		return
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	lp.l.Infof(ctx, "syncloop.dispatch: update %d: %s from chat %s", u.UpdateID, cmd.Kind, chatID)
	lp.handler.Dispatch(ctx, bot, chatID, cmd)
}

// dailyPhase reactivates daily tasks once per local date, then fires the reminder.
func (lp *Loop) dailyPhase(ctx context.Context, now time.Time, s model.Settings) {
	today := now.In(lp.opts.Location).Format(dateLayout)

	switch last := lp.state.LastDailyReset(); {
	case last == "":
		// First run: nothing was completed on an earlier day yet.
		if err := lp.state.SetLastDailyReset(ctx, today); err != nil {
			lp.l.Warnf(ctx, "syncloop.dailyPhase: record reset date: %v", err)
		}
	case last != today:
		n, err := lp.organizer.ResetDailyTasks(ctx)
		if err != nil {
			lp.l.Errorf(ctx, "syncloop.dailyPhase: reset daily tasks: %v", err)
			break
		}
		if err := lp.state.SetLastDailyReset(ctx, today); err != nil {
			lp.l.Warnf(ctx, "syncloop.dailyPhase: record reset date: %v", err)
		}
		lp.l.Infof(ctx, "syncloop.dailyPhase: reactivated %d daily tasks for %s", n, today)
	}

	r, fired, err := lp.reminder.MaybeFire(ctx, now, s, lp.organizer.ActiveTasks(ctx))
	if err != nil {
		lp.l.Errorf(ctx, "syncloop.dailyPhase: %v", err)
		return
	}
	if !fired {
		return
	}

	if s.TelegramBotToken == "" || s.TelegramChatID == "" {
		lp.l.Warnf(ctx, "syncloop.dailyPhase: reminder for %s fired with no chat configured", r.Date)
		return
	}
	if err := lp.bots.For(s.TelegramBotToken).SendMarkdown(ctx, s.TelegramChatID, r.Text); err != nil {
		lp.l.Warnf(ctx, "syncloop.dailyPhase: send reminder: %v", err)
		return
	}
	lp.l.Infof(ctx, "syncloop.dailyPhase: reminder for %s sent", r.Date)
}

// Status reports the loop bookkeeping.
func (lp *Loop) Status() Status {
	lp.statsMu.Lock()
	st := Status{
		Running:      lp.running,
		LastTick:     lp.lastTick,
		TicksRun:     lp.ran,
		TicksSkipped: lp.skipped,
		BotID:        lp.botID,
	}
	lp.statsMu.Unlock()

	snap := lp.state.Snapshot()
	st.Cursor = snap.Cursor(st.BotID)
	st.LastReminderDate = snap.LastReminderDate
	st.LastDailyReset = snap.LastDailyReset
	return st
}

func (lp *Loop) setRunning(v bool) {
	lp.statsMu.Lock()
	lp.running = v
	lp.statsMu.Unlock()
}
