// Package retry decides whether a failed request should be attempted again.
// The policy is stateless: callers own the attempt counter and the actual
// re-invocation, and consult ShouldRetry or Decide before each retry.
package retry

import (
	"errors"
	"net/http"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

// MaxAttempts is the number of retries allowed for an expired session.
// Attempts are counted from zero, so attempts 0, 1 and 2 may retry.
const MaxAttempts = 3

// Pause between retries: BaseDelay before the first, doubling each time,
// never more than MaxDelay.
const (
	BaseDelay = time.Second
	MaxDelay  = 30 * time.Second
)

// NewBackoff returns the delay sequence for one logical request, starting at
// base and doubling up to MaxDelay. A base of zero or less never waits.
func NewBackoff(base time.Duration) goretry.Backoff {
	if base <= 0 {
		return goretry.BackoffFunc(func() (time.Duration, bool) { return 0, false })
	}
	return goretry.WithCappedDuration(MaxDelay, goretry.NewExponential(base))
}

// StatusCoder is implemented by errors that carry an HTTP-style status code.
type StatusCoder interface {
	StatusCode() int
}

// ShouldRetry reports whether a request that failed with status may be retried
// after attempt previous retries. Only 401 (authentication expired) is
// retryable. A nil status means the failure carried no status at all.
func ShouldRetry(attempt int, status *int) bool {
	if status == nil {
		return false
	}
	return *status == http.StatusUnauthorized && attempt < MaxAttempts
}

// Decide extracts a status code from err, if any, and applies ShouldRetry.
func Decide(attempt int, err error) bool {
	status, ok := StatusFromError(err)
	if !ok {
		return ShouldRetry(attempt, nil)
	}
	return ShouldRetry(attempt, &status)
}

// StatusFromError returns the status code carried by err or anything it wraps.
func StatusFromError(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var sc StatusCoder
	if !errors.As(err, &sc) {
		return 0, false
	}
	return sc.StatusCode(), true
}

// StatusError is a minimal error carrying a status code.
type StatusError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Code)
	}
	return e.Message
}

// StatusCode implements StatusCoder.
func (e *StatusError) StatusCode() int {
	return e.Code
}
