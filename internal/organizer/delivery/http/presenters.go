package http

import (
	"strings"

	"social-arch/internal/model"
	"social-arch/internal/organizer"
)

// --- Request DTOs ---

type addTaskReq struct {
	Text    string `json:"text"    binding:"required"`
	IsDaily bool   `json:"isDaily"`
}

func (r addTaskReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return organizer.ErrEmptyText
	}
	return nil
}

func (r addTaskReq) toInput() organizer.AddTaskInput {
	return organizer.AddTaskInput{
		Text:    r.Text,
		IsDaily: r.IsDaily,
	}
}

type completeTaskReq struct {
	Position int `json:"position" binding:"required"`
}

type addNoteReq struct {
	Text string `json:"text" binding:"required"`
}

func (r addNoteReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return organizer.ErrEmptyText
	}
	return nil
}

// --- Response DTOs ---

type taskResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	IsDaily   bool   `json:"isDaily"`
	CreatedAt int64  `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		IsDaily:   t.IsDaily,
		CreatedAt: t.CreatedAt,
	}
}

type listTasksResp struct {
	Tasks  []taskResp `json:"tasks"`
	Active int        `json:"active"`
}

func newListTasksResp(tasks []model.Task) listTasksResp {
	out := listTasksResp{Tasks: make([]taskResp, len(tasks))}
	for i, t := range tasks {
		out.Tasks[i] = newTaskResp(t)
		if !t.Completed {
			out.Active++
		}
	}
	return out
}

type noteResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:        n.ID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
}

type listNotesResp struct {
	Notes []noteResp `json:"notes"`
}

func newListNotesResp(notes []model.Note) listNotesResp {
	out := listNotesResp{Notes: make([]noteResp, len(notes))}
	for i, n := range notes {
		out.Notes[i] = newNoteResp(n)
	}
	return out
}
