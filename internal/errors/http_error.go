package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Business outcomes the booking flow returns to callers. Both are
// user-correctable, so they map to 400-class responses; anything else
// coming out of a service is treated as a 500.
var (
	ErrInvalidInput    = NewHTTPError(http.StatusBadRequest, "patient name and contact phone are required")
	ErrSlotUnavailable = NewHTTPError(http.StatusBadRequest, "slot is not available")
)

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
)
