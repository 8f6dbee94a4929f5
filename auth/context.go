package auth

import "context"

// Context key for auth-related values.
type contextKey int

const sessionKey contextKey = iota

// WithSession returns a new context with the given session attached.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext retrieves the session from the context.
// Returns nil if no session is present.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey).(*Session)
	return s
}

// SubjectFromContext retrieves the authenticated subject from the context.
// Returns empty string if no session is present.
func SubjectFromContext(ctx context.Context) string {
	s := SessionFromContext(ctx)
	if s == nil {
		return ""
	}
	return s.Subject
}
