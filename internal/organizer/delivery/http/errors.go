package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"social-arch/internal/organizer"
	"social-arch/pkg/response"
)

var errIDRequired = errors.New("id is required")

// writeError maps organizer errors onto response envelopes.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, organizer.ErrEmptyText), errors.Is(err, organizer.ErrIndexOutOfRange):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
