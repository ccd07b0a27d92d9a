package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"social-arch/pkg/response"
)

// Trigger godoc
// @Summary     Run a sync tick now
// @Description Runs one tick unless one is already in flight.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} triggerResp
// @Router      /api/v1/sync [POST]
func (h *handler) Trigger(c *gin.Context) {
	// The tick must not be cut short by the client going away.
	ctx := context.WithoutCancel(c.Request.Context())

	ran := h.loop.Tick(ctx)
	if !ran {
		h.l.Infof(ctx, "sync trigger: tick already running")
	}
	response.OK(c, triggerResp{Ran: ran, Status: newStatusResp(h.loop.Status())})
}

// Status godoc
// @Summary     Sync loop status
// @Tags        Sync
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/sync/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.loop.Status()))
}
