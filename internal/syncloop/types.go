package syncloop

import "time"

// Options tunes the loop.
type Options struct {
	// Interval between ticks.
	Interval time.Duration
	// PollTimeout bounds one getUpdates call. Must be shorter than Interval.
	PollTimeout time.Duration
	// Location is the zone used for daily dates and the reminder clock.
	Location *time.Location
}

// Status is a snapshot of the loop bookkeeping.
type Status struct {
	Running          bool      `json:"running"`
	LastTick         time.Time `json:"lastTick"`
	TicksRun         int64     `json:"ticksRun"`
	TicksSkipped     int64     `json:"ticksSkipped"`
	BotID            string    `json:"botId,omitempty"`
	Cursor           int64     `json:"cursor"`
	LastReminderDate string    `json:"lastReminderDate,omitempty"`
	LastDailyReset   string    `json:"lastDailyReset,omitempty"`
}
