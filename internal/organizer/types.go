package organizer

// AddTaskInput is the input for task creation.
type AddTaskInput struct {
	Text    string
	IsDaily bool
}
