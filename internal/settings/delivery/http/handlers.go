package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"social-arch/internal/settings"
	"social-arch/pkg/response"
)

// Get godoc
// @Summary     Get settings
// @Description Returns the current settings. Secrets are masked.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsDTO
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newSettingsResp(s))
}

// Update godoc
// @Summary     Update settings
// @Description Replaces the settings record. Masked secrets keep their stored value.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body settingsDTO true "Settings"
// @Success     200 {object} settingsDTO
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req settingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, req.toModel())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		if errors.Is(err, settings.ErrPersistence) {
			response.InternalError(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newSettingsResp(updated))
}
