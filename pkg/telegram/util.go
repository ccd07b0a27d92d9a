package telegram

import "strings"

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
)

// EscapeMarkdown escapes user text for the legacy Markdown parse mode.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// BotID returns the numeric bot id that prefixes a token ("123456:ABC..." -> "123456").
// Tokens without a colon are returned whole so distinct tokens never share an id.
func BotID(token string) string {
	id, _, found := strings.Cut(token, ":")
	if !found {
		return token
	}
	return id
}
