package common

import (
	"context"
)

// SessionContext identifies the client session a request belongs to.
// It is populated by the session middleware from the bearer token.
type SessionContext struct {
	SessionID string
	IssuedAt  int64
}

type contextKey int

const sessionContextKey contextKey = iota

// WithSessionContext stores a SessionContext in the request context.
func WithSessionContext(ctx context.Context, sc *SessionContext) context.Context {
	return context.WithValue(ctx, sessionContextKey, sc)
}

// SessionContextFromContext retrieves the SessionContext from context, or nil if absent.
func SessionContextFromContext(ctx context.Context) *SessionContext {
	sc, _ := ctx.Value(sessionContextKey).(*SessionContext)
	return sc
}

// ResolveSessionID returns the session id from context, or "" when the request is anonymous.
func ResolveSessionID(ctx context.Context) string {
	if sc := SessionContextFromContext(ctx); sc != nil {
		return sc.SessionID
	}
	return ""
}
