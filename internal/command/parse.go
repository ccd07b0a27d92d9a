package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// tokens maps every accepted command word to its kind.
var tokens = map[string]Kind{
	"/task":   AddTask,
	"/note":   AddNote,
	"/list":   ListTasks,
	"/tasks":  ListTasks,
	"/done":   DoneTask,
	"/trends": CheckTrends,
	"/check":  CheckTrends,
	"/idea":   GetIdea,
	"/help":   Help,
	"/start":  Start,
	"/status": Status,
}

// Parse classifies a chat message. The command word must be followed by end of
// text, whitespace or an "@botname" suffix; anything else is None.
func Parse(text string) Command {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Command{Kind: None}
	}

	end := strings.IndexFunc(text, unicode.IsSpace)
	word, rest := text, ""
	if end >= 0 {
		word, rest = text[:end], text[end:]
	}

	// "/task@MyBot" addresses this bot in a group chat.
	if at := strings.IndexByte(word, '@'); at >= 0 {
		if at == len(word)-1 {
			return Command{Kind: None}
		}
		word = word[:at]
	}

	kind, ok := tokens[strings.ToLower(word)]
	if !ok {
		return Command{Kind: None}
	}

	return Command{Kind: kind, Payload: strings.TrimSpace(rest)}
}

// ParsePosition parses a 1-based list position.
func ParsePosition(payload string) (int, error) {
	payload = strings.TrimSpace(payload)
	n, err := strconv.Atoi(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, payload)
	}
	return n, nil
}
