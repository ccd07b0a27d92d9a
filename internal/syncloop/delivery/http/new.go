package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"social-arch/internal/syncloop"
	"social-arch/pkg/log"
)

// Loop is the part of *syncloop.Loop the handler drives.
type Loop interface {
	Tick(ctx context.Context) bool
	Status() syncloop.Status
}

// Handler is the public interface for the sync HTTP delivery layer.
type Handler interface {
	Trigger(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l    log.Logger
	loop Loop
}

// New creates a new HTTP handler for the sync loop.
func New(l log.Logger, loop Loop) Handler {
	return &handler{l: l, loop: loop}
}

// RegisterRoutes maps /sync onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	s := rg.Group("/sync")
	{
		s.POST("", h.Trigger)
		s.GET("/status", h.Status)
	}
}
