package model

// Task is a to-do item of the organizer.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	IsDaily   bool   `json:"isDaily"`   // reappears every day when true
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// Note is a free-form text note.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}
