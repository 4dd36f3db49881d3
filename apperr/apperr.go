package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the common shape for failures that cross a handler boundary.
// Status is the HTTP status the caller should see; Message is safe to
// return in a response body (no secrets, no stack traces).
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Provider wraps a payment-provider failure; status should be the provider's
// HTTP status when known, 500 otherwise.
func Provider(status int, message string) *Error {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	return &Error{Status: status, Message: message}
}

func Signature(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// Respond writes err as the standard {"error": message} body. Unknown error
// types are reported as a generic 500 so internals never leak to the caller.
func Respond(c *gin.Context, err error) {
	var ae *Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, gin.H{"error": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
