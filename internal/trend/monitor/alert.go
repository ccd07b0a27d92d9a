package monitor

import (
	"fmt"
	"strings"

	"social-arch/internal/model"
	"social-arch/pkg/telegram"
)

const defaultGrowth = "Высокая активность"

func categoryEmoji(c model.TrendCategory) string {
	switch c {
	case model.TrendCategoryAudio:
		return "🎵"
	case model.TrendCategoryFormats:
		return "🎬"
	case model.TrendCategoryPlots:
		return "📝"
	default:
		return "🔥"
	}
}

// RenderAlert builds the Markdown alert for a single trend.
func RenderAlert(t model.TrendItem) string {
	category := t.Category
	if category == "" {
		category = model.TrendCategoryGeneral
	}
	growth := t.GrowthMetric
	if growth == "" {
		growth = defaultGrowth
	}
	esc := telegram.EscapeMarkdown

	var b strings.Builder
	fmt.Fprintf(&b, "*📡 3D RADAR ALERT* | %s\n\n", esc(string(category)))
	fmt.Fprintf(&b, "%s *Тренд:* %s\n", categoryEmoji(category), esc(t.TrendName))
	fmt.Fprintf(&b, "🎯 *Платформа:* %s\n", esc(t.Platform))
	fmt.Fprintf(&b, "📈 *Показатели:* %s\n\n", esc(growth))
	fmt.Fprintf(&b, "🔎 *Почему это хайпит:*\n_%s_\n\n", esc(t.HypeReason))
	fmt.Fprintf(&b, "💡 *Суть:*\n%s", esc(t.Description))
	if t.Difficulty != "" {
		fmt.Fprintf(&b, "\n\n⚠️ *Сложность:* %s", esc(t.Difficulty))
	}
	if t.Vibe != "" {
		sep := "\n"
		if t.Difficulty == "" {
			sep = "\n\n"
		}
		fmt.Fprintf(&b, "%s✨ *Вайб:* %s", sep, esc(t.Vibe))
	}
	return b.String()
}
