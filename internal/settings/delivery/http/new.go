package http

import (
	"github.com/gin-gonic/gin"

	"social-arch/internal/settings"
	"social-arch/pkg/log"
)

// Handler is the public interface for the settings HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for the settings record.
func New(l log.Logger, uc settings.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps /settings onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/settings", h.Get)
	rg.PUT("/settings", h.Update)
}
