package http

import (
	"github.com/gin-gonic/gin"

	"social-arch/pkg/response"
)

// ListTasks godoc
// @Summary     List tasks
// @Description Returns all tasks, newest first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listTasksResp
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	response.OK(c, newListTasksResp(h.uc.ListTasks(c.Request.Context())))
}

// AddTask godoc
// @Summary     Add a task
// @Description Prepends a new active task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addTaskReq true "Task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.AddTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// ToggleTask godoc
// @Summary     Toggle a task
// @Description Flips the completed flag. Unknown ids are ignored.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} listTasksResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ToggleTask(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ToggleTask: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newListTasksResp(h.uc.ListTasks(ctx)))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} listTasksResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteTask(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newListTasksResp(h.uc.ListTasks(ctx)))
}

// CompleteTask godoc
// @Summary     Complete a task by position
// @Description Completes the N-th (1-based) active task, as numbered by /list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body completeTaskReq true "Position"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.CompleteTaskByPosition(ctx, req.Position)
	if err != nil {
		h.l.Warnf(ctx, "uc.CompleteTaskByPosition: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// ListNotes godoc
// @Summary     List notes
// @Tags        Notes
// @Produce     json
// @Success     200 {object} listNotesResp
// @Router      /api/v1/notes [GET]
func (h *handler) ListNotes(c *gin.Context) {
	response.OK(c, newListNotesResp(h.uc.ListNotes(c.Request.Context())))
}

// AddNote godoc
// @Summary     Add a note
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body addNoteReq true "Note"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [POST]
func (h *handler) AddNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.AddNote(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddNote: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newNoteResp(n))
}

// DeleteNote godoc
// @Summary     Delete a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} listNotesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) DeleteNote(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteNote(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteNote: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newListNotesResp(h.uc.ListNotes(ctx)))
}
