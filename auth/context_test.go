package auth

import (
	"context"
	"testing"
	"time"
)

func TestSessionContextRoundTrip(t *testing.T) {
	session := &Session{
		Subject:   "admin",
		ID:        "token-1",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	ctx := WithSession(context.Background(), session)

	if got := SessionFromContext(ctx); got != session {
		t.Fatalf("SessionFromContext() = %v, want %v", got, session)
	}
	if got := SubjectFromContext(ctx); got != "admin" {
		t.Fatalf("SubjectFromContext() = %q, want %q", got, "admin")
	}
}

func TestSessionFromContextAbsent(t *testing.T) {
	ctx := context.Background()

	if got := SessionFromContext(ctx); got != nil {
		t.Fatalf("SessionFromContext() = %v, want nil", got)
	}
	if got := SubjectFromContext(ctx); got != "" {
		t.Fatalf("SubjectFromContext() = %q, want empty", got)
	}
}

func TestWithSessionNil(t *testing.T) {
	ctx := WithSession(context.Background(), nil)

	if got := SessionFromContext(ctx); got != nil {
		t.Fatalf("SessionFromContext() = %v, want nil", got)
	}
	if got := SubjectFromContext(ctx); got != "" {
		t.Fatalf("SubjectFromContext() = %q, want empty", got)
	}
}
