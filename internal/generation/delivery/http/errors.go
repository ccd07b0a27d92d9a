package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"social-arch/internal/generation"
	"social-arch/pkg/response"
)

func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, generation.ErrBackendNotConfigured):
		response.Error(c, err, nil)
	case errors.Is(err, generation.ErrGeneration):
		response.BadGateway(c, err)
	default:
		response.InternalError(c, err)
	}
}
