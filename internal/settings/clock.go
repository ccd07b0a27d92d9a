package settings

import (
	"fmt"
	"time"
)

// ParseClock parses "HH:MM" (24h) into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidReminderTime, s)
	}
	return t.Hour(), t.Minute(), nil
}
