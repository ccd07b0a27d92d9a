package model

// SyncState is the persisted bookkeeping of the sync loop.
type SyncState struct {
	// Cursors holds the last processed update id per bot id.
	Cursors map[string]int64 `json:"cursors"`
	// LastReminderDate is the YYYY-MM-DD local date the daily reminder last fired.
	LastReminderDate string `json:"lastReminderDate"`
	// LastDailyReset is the YYYY-MM-DD local date daily tasks were last reactivated.
	LastDailyReset string `json:"lastDailyReset"`
}

// Cursor returns the cursor for botID, zero when none was stored.
func (s SyncState) Cursor(botID string) int64 {
	if s.Cursors == nil {
		return 0
	}
	return s.Cursors[botID]
}
