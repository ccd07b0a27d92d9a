package telegram

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"social-arch/internal/command"
	"social-arch/internal/generation"
	"social-arch/internal/organizer"
	"social-arch/internal/trend"
	pkgLog "social-arch/pkg/log"
	pkgTelegram "social-arch/pkg/telegram"
)

const helpMessage = `🤖 *3D Social Arch Bot*

*Органайзер:*
📝 */task [текст]* — Добавить задачу
📌 */note [текст]* — Добавить заметку
📋 */list* — Список задач и заметок
✅ */done [номер]* — Выполнить задачу (по номеру из списка)

*Инструменты:*
💡 */idea* — Сгенерировать идею
🔍 */trends* — Сканировать тренды
❓ */help* — Показать это меню`

// generationTimeout bounds one background LLM call started from chat.
const generationTimeout = 45 * time.Second

// botProfile is implemented by *pkgTelegram.Bot; /status uses it as a live token check.
type botProfile interface {
	GetMe(ctx context.Context) (*pkgTelegram.User, error)
}

type handler struct {
	l            pkgLog.Logger
	uc           organizer.UseCase
	trendUC      trend.UseCase
	generationUC generation.UseCase
	startedAt    time.Time
	now          func() time.Time

	jobs sync.WaitGroup
}

func (h *handler) Dispatch(ctx context.Context, sender Sender, chatID string, cmd command.Command) {
	switch cmd.Kind {
	case command.AddTask:
		h.addTask(ctx, sender, chatID, cmd.Payload)
	case command.AddNote:
		h.addNote(ctx, sender, chatID, cmd.Payload)
	case command.ListTasks:
		h.reply(ctx, sender, chatID, h.uc.ListFormatted(ctx))
	case command.DoneTask:
		h.doneTask(ctx, sender, chatID, cmd.Payload)
	case command.CheckTrends:
		h.checkTrends(ctx, sender, chatID)
	case command.GetIdea:
		h.getIdea(ctx, sender, chatID)
	case command.Help, command.Start:
		h.reply(ctx, sender, chatID, helpMessage)
	case command.Status:
		h.reply(ctx, sender, chatID, h.statusMessage(ctx, sender))
	default:
		h.l.Debugf(ctx, "telegram handler: ignoring %s from chat %s", cmd.Kind, chatID)
	}
}

func (h *handler) addTask(ctx context.Context, sender Sender, chatID, text string) {
	if strings.TrimSpace(text) == "" {
		h.reply(ctx, sender, chatID, msgTaskUsage)
		return
	}

	t, err := h.uc.AddTask(ctx, organizer.AddTaskInput{Text: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: AddTask failed: %v", err)
		h.reply(ctx, sender, chatID, errorMessage(err))
		return
	}
	h.reply(ctx, sender, chatID, fmt.Sprintf("✅ Задача добавлена: \"%s\"", pkgTelegram.EscapeMarkdown(t.Text)))
}

func (h *handler) addNote(ctx context.Context, sender Sender, chatID, text string) {
	if strings.TrimSpace(text) == "" {
		h.reply(ctx, sender, chatID, msgNoteUsage)
		return
	}

	if _, err := h.uc.AddNote(ctx, text); err != nil {
		h.l.Errorf(ctx, "telegram handler: AddNote failed: %v", err)
		h.reply(ctx, sender, chatID, errorMessage(err))
		return
	}
	h.reply(ctx, sender, chatID, "📌 Заметка сохранена.")
}

func (h *handler) doneTask(ctx context.Context, sender Sender, chatID, payload string) {
	pos, err := command.ParsePosition(payload)
	if err != nil {
		h.reply(ctx, sender, chatID, errorMessage(err))
		return
	}

	t, err := h.uc.CompleteTaskByPosition(ctx, pos)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: CompleteTaskByPosition(%d) failed: %v", pos, err)
		h.reply(ctx, sender, chatID, errorMessage(err))
		return
	}
	h.reply(ctx, sender, chatID, fmt.Sprintf("👍 Задача \"%s\" выполнена!", pkgTelegram.EscapeMarkdown(t.Text)))
}

// checkTrends refreshes the trend cache in the background. The result is
// visible in the UI; only the monitor pushes trends to the chat.
func (h *handler) checkTrends(ctx context.Context, sender Sender, chatID string) {
	h.reply(ctx, sender, chatID, "🔍 *Сканирую тренды...*")

	h.background(ctx, "trend scan", func(ctx context.Context) {
		snap, err := h.trendUC.Scan(ctx, "")
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: trend scan failed: %v", err)
			return
		}
		h.l.Infof(ctx, "telegram handler: trend scan cached %d items", len(snap.Items))
	})
}

// getIdea acknowledges at once and replies with the idea when generation finishes.
// A failed generation is logged only.
func (h *handler) getIdea(ctx context.Context, sender Sender, chatID string) {
	h.reply(ctx, sender, chatID, "💡 *Генерирую идею...*")

	h.background(ctx, "idea", func(ctx context.Context) {
		idea, err := h.generationUC.GenerateIdea(ctx)
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: GenerateIdea failed: %v", err)
			return
		}
		h.reply(ctx, sender, chatID, "💎 *Идея для контента:*\n\n"+pkgTelegram.EscapeMarkdown(idea))
	})
}

// background runs fn off the sync tick, bounded by generationTimeout.
func (h *handler) background(ctx context.Context, name string, fn func(ctx context.Context)) {
	h.jobs.Add(1)
	go func() {
		defer h.jobs.Done()
		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(ctx, "telegram handler: %s job panicked: %v\n%s", name, r, debug.Stack())
			}
		}()

		jobCtx, cancel := context.WithTimeout(ctx, generationTimeout)
		defer cancel()
		fn(jobCtx)
	}()
}

func (h *handler) Wait() {
	h.jobs.Wait()
}

func (h *handler) statusMessage(ctx context.Context, sender Sender) string {
	uptime := h.now().Sub(h.startedAt).Truncate(time.Second)

	bot := "✅ подключен"
	if bp, ok := sender.(botProfile); ok {
		me, err := bp.GetMe(ctx)
		switch {
		case err != nil:
			h.l.Warnf(ctx, "telegram handler: getMe failed: %v", err)
			bot = "⚠️ токен не прошёл проверку"
		case me.Username != "":
			bot = "✅ @" + pkgTelegram.EscapeMarkdown(me.Username)
		}
	}

	llm := "❌ не настроен"
	if h.generationUC.Configured(ctx) {
		llm = "✅ настроен"
	}

	return fmt.Sprintf("✅ *Сервер в порядке*\n\n⏱ Аптайм: %s\n🤖 Бот: %s\n🧠 LLM: %s", uptime, bot, llm)
}

// reply sends text and only logs a failure.
func (h *handler) reply(ctx context.Context, sender Sender, chatID, text string) {
	if err := sender.SendMarkdown(ctx, chatID, text); err != nil {
		h.l.Warnf(ctx, "telegram handler: send to chat %s failed: %v", chatID, err)
	}
}
