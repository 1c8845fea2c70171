package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned by task calls when the token source holds no token.
var ErrNotAuthenticated = errors.New("not logged in")

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	TraceID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.TraceID != "" {
		return fmt.Sprintf("api error %d: %s (trace %s)", e.Status, msg, e.TraceID)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, msg)
}

// StatusCode implements retry.StatusCoder.
func (e *APIError) StatusCode() int {
	return e.Status
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
