package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /tasks and /notes onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.AddTask)
		tasks.POST("/complete", h.CompleteTask)
		tasks.PATCH("/:id/toggle", h.ToggleTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	notes := rg.Group("/notes")
	{
		notes.GET("", h.ListNotes)
		notes.POST("", h.AddNote)
		notes.DELETE("/:id", h.DeleteNote)
	}
}
