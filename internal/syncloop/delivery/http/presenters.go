package http

import (
	"social-arch/internal/syncloop"
	"social-arch/pkg/response"
)

type statusResp struct {
	Running          bool               `json:"running"`
	LastTick         *response.DateTime `json:"lastTick,omitempty"`
	TicksRun         int64              `json:"ticksRun"`
	TicksSkipped     int64              `json:"ticksSkipped"`
	BotID            string             `json:"botId,omitempty"`
	Cursor           int64              `json:"cursor"`
	LastReminderDate string             `json:"lastReminderDate,omitempty"`
	LastDailyReset   string             `json:"lastDailyReset,omitempty"`
}

func newStatusResp(s syncloop.Status) statusResp {
	return statusResp{
		Running:          s.Running,
		TicksRun:         s.TicksRun,
		TicksSkipped:     s.TicksSkipped,
		BotID:            s.BotID,
		Cursor:           s.Cursor,
		LastReminderDate: s.LastReminderDate,
		LastDailyReset:   s.LastDailyReset,
		LastTick:         response.NewDateTime(s.LastTick),
	}
}

type triggerResp struct {
	// Ran is false when another tick was already in flight.
	Ran    bool       `json:"ran"`
	Status statusResp `json:"status"`
}
