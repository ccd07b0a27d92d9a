package http

import (
	"github.com/gin-gonic/gin"

	"social-arch/internal/trend"
	"social-arch/pkg/log"
)

// Handler is the public interface for the trend HTTP delivery layer.
type Handler interface {
	Current(c *gin.Context)
	Scan(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc trend.UseCase
}

// New creates a new HTTP handler for trend scans.
func New(l log.Logger, uc trend.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps /trends onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	trends := rg.Group("/trends")
	{
		trends.GET("", h.Current)
		trends.POST("/scan", h.Scan)
	}
}
