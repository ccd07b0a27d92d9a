package http

import (
	"github.com/gin-gonic/gin"

	"social-arch/internal/model"
	"social-arch/pkg/response"
)

// Current godoc
// @Summary     Cached trends
// @Description Returns the result of the last trend scan.
// @Tags        Trends
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/trends [GET]
func (h *handler) Current(c *gin.Context) {
	response.OK(c, newSnapshotResp(h.uc.Current(c.Request.Context())))
}

// Scan godoc
// @Summary     Scan trends
// @Description Runs a trend scan and replaces the cache. Nothing is sent to Telegram.
// @Tags        Trends
// @Accept      json
// @Produce     json
// @Param       body body scanReq false "Category"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Generation backend failed"
// @Router      /api/v1/trends/scan [POST]
func (h *handler) Scan(c *gin.Context) {
	ctx := c.Request.Context()

	var req scanReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err, nil)
			return
		}
	}

	snap, err := h.uc.Scan(ctx, model.TrendCategory(req.Category))
	if err != nil {
		h.l.Warnf(ctx, "uc.Scan: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newSnapshotResp(snap))
}
