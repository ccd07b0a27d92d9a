package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoToken = errors.New("telegram bot token is not configured")
	ErrNoChat  = errors.New("telegram chat id is not configured")
)

// APIError is a request the Bot API answered with ok=false or a non-200 status.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s API error %d: %s", e.Method, e.Code, e.Description)
}

// IsConflict reports whether err is a 409 from getUpdates, returned while a webhook is set
// or another poller holds the token.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict
}

// IsUnauthorized reports whether err is a 401 (revoked or mistyped token).
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized
}
