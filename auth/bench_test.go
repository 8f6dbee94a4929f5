package auth

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// BenchmarkVerifier_Verify measures a full password check. The cost is
// dominated by bcrypt even at MinCost.
func BenchmarkVerifier_Verify(b *testing.B) {
	hash, err := HashPassword("opensesame", bcrypt.MinCost)
	if err != nil {
		b.Fatalf("HashPassword() error = %v", err)
	}
	v := NewVerifier(VerifierConfig{}, &stubCredentials{values: map[string]string{
		DefaultUsernameSecret:     "admin",
		DefaultPasswordHashSecret: hash,
	}})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Verify(ctx, "admin", "opensesame")
	}
}

// BenchmarkTokenIssuer_Issue measures token signing.
func BenchmarkTokenIssuer_Issue(b *testing.B) {
	issuer := NewTokenIssuer(TokenIssuerConfig{}, signingCredentials(testSigningKey))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = issuer.Issue(ctx, "admin")
	}
}

// BenchmarkTokenIssuer_Verify measures token validation.
func BenchmarkTokenIssuer_Verify(b *testing.B) {
	issuer := NewTokenIssuer(TokenIssuerConfig{}, signingCredentials(testSigningKey))
	ctx := context.Background()
	token, err := issuer.Issue(ctx, "admin")
	if err != nil {
		b.Fatalf("Issue() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = issuer.Verify(ctx, token)
	}
}

// BenchmarkAttemptLimiter_Allow measures a single-key throttle decision.
func BenchmarkAttemptLimiter_Allow(b *testing.B) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 1e9, Burst: 1 << 30})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Allow("bench-key")
	}
}

// BenchmarkAttemptLimiter_Allow_Parallel measures contention across keys.
func BenchmarkAttemptLimiter_Allow_Parallel(b *testing.B) {
	l := NewAttemptLimiter(AttemptLimiterConfig{Rate: 1e9, Burst: 1 << 30})

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = l.Allow(fmt.Sprintf("key-%d", i%128))
			i++
		}
	})
}
