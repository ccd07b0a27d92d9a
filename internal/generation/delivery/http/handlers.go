package http

import (
	"github.com/gin-gonic/gin"

	"social-arch/pkg/response"
)

// Idea godoc
// @Summary     Generate a content idea
// @Tags        Generation
// @Produce     json
// @Success     200 {object} textResp
// @Failure     400 {object} response.Resp "Backend not configured"
// @Failure     502 {object} response.Resp "Generation backend failed"
// @Router      /api/v1/generate/idea [POST]
func (h *handler) Idea(c *gin.Context) {
	ctx := c.Request.Context()

	idea, err := h.uc.GenerateIdea(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.GenerateIdea: %v", err)
		h.writeError(c, err)
		return
	}
	response.OK(c, textResp{Text: idea})
}

// Generate godoc
// @Summary     Generate text
// @Description Runs a prompt against the backend selected in settings.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Prompt"
// @Success     200 {object} textResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Generation backend failed"
// @Router      /api/v1/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	text, err := h.uc.Generate(ctx, req.Prompt, req.System)
	if err != nil {
		h.l.Warnf(ctx, "uc.Generate: %v", err)
		h.writeError(c, err)
		return
	}
	response.OK(c, textResp{Text: text})
}
