package usecase

import (
	"context"
	"fmt"
	"strings"

	"social-arch/pkg/telegram"
)

const (
	listHeader      = "📋 *ВАШИ ЗАДАЧИ:*"
	listEmpty       = "Нет активных задач"
	listDoneHeader  = "*Выполнено:*"
	listActiveEntry = "%d. ⬜ %s"
	listDoneEntry   = "✅ %s"
)

func (uc *implUseCase) ListFormatted(ctx context.Context) string {
	tasks := uc.ListTasks(ctx)

	var active, done []string
	for _, t := range tasks {
		text := telegram.EscapeMarkdown(t.Text)
		if t.Completed {
			done = append(done, fmt.Sprintf(listDoneEntry, text))
			continue
		}
		active = append(active, fmt.Sprintf(listActiveEntry, len(active)+1, text))
	}

	var b strings.Builder
	b.WriteString(listHeader)
	b.WriteString("\n\n")
	if len(active) == 0 {
		b.WriteString(listEmpty)
	} else {
		b.WriteString(strings.Join(active, "\n"))
	}
	if len(done) > 0 {
		b.WriteString("\n\n")
		b.WriteString(listDoneHeader)
		b.WriteString("\n")
		b.WriteString(strings.Join(done, "\n"))
	}
	return b.String()
}
