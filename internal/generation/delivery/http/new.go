package http

import (
	"github.com/gin-gonic/gin"

	"social-arch/internal/generation"
	"social-arch/pkg/log"
)

// Handler is the public interface for the generation HTTP delivery layer.
type Handler interface {
	Idea(c *gin.Context)
	Generate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc generation.UseCase
}

// New creates a new HTTP handler for text generation.
func New(l log.Logger, uc generation.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps /generate onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	gen := rg.Group("/generate")
	{
		gen.POST("", h.Generate)
		gen.POST("/idea", h.Idea)
	}
}
