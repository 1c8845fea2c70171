package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// SessionTokenContextKey holds the bearer token of an authenticated request.
	SessionTokenContextKey ContextKey = "sessionToken"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetSessionToken records the token an authenticated request presented.
func SetSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, SessionTokenContextKey, token)
}

// GetSessionToken returns the token stored by SetSessionToken.
func GetSessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenContextKey).(string)
	return token, ok && token != ""
}

// generateTraceID returns a random 32-character hex string.
func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
