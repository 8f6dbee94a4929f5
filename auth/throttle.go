package auth

import (
	"context"
	"sync"
	"time"
)

// AttemptLimiterConfig configures login attempt limiting.
type AttemptLimiterConfig struct {
	// Rate is the number of attempts refilled per second per key.
	// Default: 0.5 (one attempt every two seconds)
	Rate float64

	// Burst is the number of attempts available at once per key.
	// Default: 5
	Burst int

	// MaxKeys is the tracked-key count that triggers pruning of buckets
	// that have fully refilled. Default: 4096
	MaxKeys int
}

// AttemptLimiter is a per-key token bucket for login attempts.
//
// Keys are caller-chosen, typically the client address or the attempted
// username. A full bucket is created on first sight of a key, so the
// limiter only ever slows a key down after repeated attempts.
type AttemptLimiter struct {
	config AttemptLimiterConfig

	mu      sync.Mutex
	buckets map[string]*attemptBucket
}

type attemptBucket struct {
	tokens      float64
	lastRefresh time.Time
}

// NewAttemptLimiter creates a new attempt limiter.
func NewAttemptLimiter(config AttemptLimiterConfig) *AttemptLimiter {
	// Apply defaults
	if config.Rate <= 0 {
		config.Rate = 0.5
	}
	if config.Burst <= 0 {
		config.Burst = 5
	}
	if config.MaxKeys <= 0 {
		config.MaxKeys = 4096
	}

	return &AttemptLimiter{
		config:  config,
		buckets: make(map[string]*attemptBucket),
	}
}

// Allow reports whether key may attempt now, consuming one attempt.
func (l *AttemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[key]
	if b == nil {
		if len(l.buckets) >= l.config.MaxKeys {
			l.pruneLocked()
		}
		b = &attemptBucket{
			tokens:      float64(l.config.Burst),
			lastRefresh: time.Now(),
		}
		l.buckets[key] = b
	}

	l.refillLocked(b)
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Attempt runs op if key may attempt now, consuming one attempt.
//
// A throttled key gets ErrThrottled before op runs, so floods of login
// attempts never reach the bcrypt check behind op.
func (l *AttemptLimiter) Attempt(ctx context.Context, key string, op func(context.Context) error) error {
	if !l.Allow(key) {
		return ErrThrottled
	}
	return op(ctx)
}

// Tokens returns the attempts currently available to key.
func (l *AttemptLimiter) Tokens(key string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[key]
	if b == nil {
		return float64(l.config.Burst)
	}
	l.refillLocked(b)
	return b.tokens
}

// Reset forgets all tracked keys.
func (l *AttemptLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets = make(map[string]*attemptBucket)
}

func (l *AttemptLimiter) refillLocked(b *attemptBucket) {
	now := time.Now()
	elapsed := now.Sub(b.lastRefresh)
	b.lastRefresh = now

	b.tokens += elapsed.Seconds() * l.config.Rate

	// Cap at burst size
	if b.tokens > float64(l.config.Burst) {
		b.tokens = float64(l.config.Burst)
	}
}

// pruneLocked drops buckets that have refilled completely; a full bucket
// carries no state worth keeping.
func (l *AttemptLimiter) pruneLocked() {
	for key, b := range l.buckets {
		l.refillLocked(b)
		if b.tokens >= float64(l.config.Burst) {
			delete(l.buckets, key)
		}
	}
}
