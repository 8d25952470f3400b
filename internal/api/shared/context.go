package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/session"
)

// ContextKey is the type of request-scoped values set by the API layer.
type ContextKey string

const (
	// SessionContextKey holds the *session.Session resolved from the bearer token.
	SessionContextKey ContextKey = "session"

	// TraceIDKey holds the trace ID used to correlate logs and error responses.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, newTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if none was set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, sess)
}

// SessionFromContext returns the session placed in ctx by the session middleware.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionContextKey).(*session.Session)
	return sess, ok && sess != nil
}

// newTraceID returns a 32 character hex string.
func newTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
