package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAttemptLimiterBurst(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 0.001, Burst: 3})

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("attempt beyond burst should be denied")
	}
}

func TestAttemptLimiterKeysAreIndependent(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 0.001, Burst: 1})

	if !l.Allow("alice") {
		t.Fatal("first attempt for alice should be allowed")
	}
	if l.Allow("alice") {
		t.Fatal("second attempt for alice should be denied")
	}
	if !l.Allow("bob") {
		t.Fatal("bob should not pay for alice's attempts")
	}
}

func TestAttemptLimiterRefills(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 1000, Burst: 1})

	if !l.Allow("key") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("key") {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(10 * time.Millisecond)
	if !l.Allow("key") {
		t.Fatal("bucket should have refilled")
	}
}

func TestAttemptLimiterReset(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 0.001, Burst: 1})

	l.Allow("key")
	if l.Allow("key") {
		t.Fatal("bucket should be empty")
	}

	l.Reset()
	if !l.Allow("key") {
		t.Fatal("reset should restore the bucket")
	}
}

func TestAttemptLimiterAttempt(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 0.001, Burst: 1})
	ctx := context.Background()

	calls := 0
	op := func(context.Context) error {
		calls++
		return nil
	}

	if err := l.Attempt(ctx, "key", op); err != nil {
		t.Fatalf("Attempt() error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("op ran %d times, want 1", calls)
	}

	if err := l.Attempt(ctx, "key", op); !errors.Is(err, ErrThrottled) {
		t.Fatalf("Attempt() error = %v, want ErrThrottled", err)
	}
	if calls != 1 {
		t.Fatalf("op ran %d times after throttling, want 1", calls)
	}
}

func TestAttemptLimiterAttemptPropagatesOpError(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{})
	opErr := errors.New("bad login")

	err := l.Attempt(context.Background(), "key", func(context.Context) error { return opErr })
	if !errors.Is(err, opErr) {
		t.Fatalf("Attempt() error = %v, want %v", err, opErr)
	}
}

func TestAttemptLimiterTokens(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 0.001, Burst: 5})

	if got := l.Tokens("fresh"); got != 5 {
		t.Fatalf("Tokens(fresh) = %v, want 5", got)
	}

	l.Allow("used")
	if got := l.Tokens("used"); got >= 5 {
		t.Fatalf("Tokens(used) = %v, want less than 5", got)
	}
}

func TestAttemptLimiterPrunesIdleBuckets(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 1e6, Burst: 2, MaxKeys: 2})

	l.Allow("a")
	l.Allow("b")

	// Give both buckets time to refill completely.
	time.Sleep(5 * time.Millisecond)

	l.Allow("c")

	l.mu.Lock()
	n := len(l.buckets)
	l.mu.Unlock()
	if n > 2 {
		t.Fatalf("tracking %d keys, want at most 2 after pruning", n)
	}
}

func TestAttemptLimiterDefaults(t *testing.T) {
	l := NewAttemptLimiter(AttemptLimiterConfig{})

	if l.config.Rate != 0.5 {
		t.Errorf("Rate = %v, want 0.5", l.config.Rate)
	}
	if l.config.Burst != 5 {
		t.Errorf("Burst = %d, want 5", l.config.Burst)
	}
	if l.config.MaxKeys != 4096 {
		t.Errorf("MaxKeys = %d, want 4096", l.config.MaxKeys)
	}
}
