package http

import (
	"github.com/gin-gonic/gin"

	"social-arch/internal/organizer"
	"social-arch/pkg/log"
)

// Handler is the public interface for the organizer HTTP delivery layer.
type Handler interface {
	ListTasks(c *gin.Context)
	AddTask(c *gin.Context)
	ToggleTask(c *gin.Context)
	DeleteTask(c *gin.Context)
	CompleteTask(c *gin.Context)
	ListNotes(c *gin.Context)
	AddNote(c *gin.Context)
	DeleteNote(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc organizer.UseCase
}

// New creates a new HTTP handler for tasks and notes.
func New(l log.Logger, uc organizer.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
