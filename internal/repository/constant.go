package repository

// Record keys.
const (
	KeySettings  = "settings"
	KeyTasks     = "tasks"
	KeyNotes     = "notes"
	KeyTrends    = "trends"
	KeySyncState = "sync_state"
)

// Storage drivers.
const (
	DriverDiskv  = "diskv"
	DriverSQLite = "sqlite"
)
