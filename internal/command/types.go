package command

// Kind identifies a remote command.
type Kind int

const (
	None Kind = iota
	AddTask
	AddNote
	ListTasks
	DoneTask
	CheckTrends
	GetIdea
	Help
	Start
	Status
)

var kindNames = map[Kind]string{
	None:        "none",
	AddTask:     "add_task",
	AddNote:     "add_note",
	ListTasks:   "list_tasks",
	DoneTask:    "done_task",
	CheckTrends: "check_trends",
	GetIdea:     "get_idea",
	Help:        "help",
	Start:       "start",
	Status:      "status",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is a parsed chat message. Payload is the trimmed text after the command token.
type Command struct {
	Kind    Kind
	Payload string
}
