package command

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
	}{
		{name: "add task", text: "/task Buy clay", want: Command{Kind: AddTask, Payload: "Buy clay"}},
		{name: "add task trims", text: "  /task   Buy clay  ", want: Command{Kind: AddTask, Payload: "Buy clay"}},
		{name: "add task empty", text: "/task", want: Command{Kind: AddTask}},
		{name: "add task multiline", text: "/task line one\nline two", want: Command{Kind: AddTask, Payload: "line one\nline two"}},
		{name: "note", text: "/note render at 4k", want: Command{Kind: AddNote, Payload: "render at 4k"}},
		{name: "list", text: "/list", want: Command{Kind: ListTasks}},
		{name: "tasks alias", text: "/tasks", want: Command{Kind: ListTasks}},
		{name: "tasks is not task plus s", text: "/tasks Buy", want: Command{Kind: ListTasks, Payload: "Buy"}},
		{name: "done", text: "/done 2", want: Command{Kind: DoneTask, Payload: "2"}},
		{name: "trends", text: "/trends", want: Command{Kind: CheckTrends}},
		{name: "check alias", text: "/check", want: Command{Kind: CheckTrends}},
		{name: "idea", text: "/idea", want: Command{Kind: GetIdea}},
		{name: "help", text: "/help", want: Command{Kind: Help}},
		{name: "start", text: "/start", want: Command{Kind: Start}},
		{name: "status", text: "/status", want: Command{Kind: Status}},
		{name: "bot suffix", text: "/task@MyBot buy", want: Command{Kind: AddTask, Payload: "buy"}},
		{name: "bot suffix alone", text: "/list@MyBot", want: Command{Kind: ListTasks}},
		{name: "dangling at", text: "/list@", want: Command{Kind: None}},
		{name: "case insensitive", text: "/LIST", want: Command{Kind: ListTasks}},
		{name: "glued suffix", text: "/taskBuy", want: Command{Kind: None}},
		{name: "unknown", text: "/foo", want: Command{Kind: None}},
		{name: "plain text", text: "hello", want: Command{Kind: None}},
		{name: "empty", text: "", want: Command{Kind: None}},
		{name: "whitespace", text: "   ", want: Command{Kind: None}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		payload string
		want    int
		wantErr bool
	}{
		{payload: "2", want: 2},
		{payload: " 9 ", want: 9},
		{payload: "0", want: 0},
		{payload: "-1", want: -1},
		{payload: "", wantErr: true},
		{payload: "two", wantErr: true},
		{payload: "2a", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePosition(tt.payload)
		if tt.wantErr {
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParsePosition(%q) error = %v, want ErrParse", tt.payload, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePosition(%q) = %d, %v; want %d", tt.payload, got, err, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if AddTask.String() != "add_task" || Kind(99).String() != "unknown" {
		t.Errorf("unexpected kind names: %s %s", AddTask, Kind(99))
	}
}
