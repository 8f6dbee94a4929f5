package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jonwraymond/credops/secret"
)

// Defaults for the signing key secret.
const (
	// DefaultSigningKeySecret holds the HS256 signing key.
	DefaultSigningKeySecret = "JWT_SECRET"

	// DefaultSigningKeyMinLength is the minimum signing key length in
	// bytes. HS256 keys below this are rejected as too weak.
	DefaultSigningKeyMinLength = 32
)

// TokenIssuerConfig configures the token issuer.
type TokenIssuerConfig struct {
	// Issuer is the iss claim stamped on issued tokens and required on
	// verified ones. Default: "credops"
	Issuer string

	// TTL is how long issued tokens live.
	// Default: 24 hours
	TTL time.Duration

	// SigningKeySecret names the secret holding the signing key.
	// Default: DefaultSigningKeySecret
	SigningKeySecret string

	// SigningKeyMinLength is the minimum signing key length in bytes.
	// Default: DefaultSigningKeyMinLength
	SigningKeyMinLength int
}

// TokenIssuer issues and verifies HS256 session tokens.
//
// The signing key is fetched through the credential store on every call;
// the store resolves it once and serves it from memory afterwards, so a
// key mounted after startup is picked up without restarting.
type TokenIssuer struct {
	config TokenIssuerConfig
	creds  Credentials
}

// NewTokenIssuer creates a token issuer backed by creds.
func NewTokenIssuer(config TokenIssuerConfig, creds Credentials) *TokenIssuer {
	// Apply defaults
	if config.Issuer == "" {
		config.Issuer = "credops"
	}
	if config.TTL <= 0 {
		config.TTL = 24 * time.Hour
	}
	if config.SigningKeySecret == "" {
		config.SigningKeySecret = DefaultSigningKeySecret
	}
	if config.SigningKeyMinLength <= 0 {
		config.SigningKeyMinLength = DefaultSigningKeyMinLength
	}

	return &TokenIssuer{
		config: config,
		creds:  creds,
	}
}

func (t *TokenIssuer) signingKey(ctx context.Context) ([]byte, error) {
	if t == nil || t.creds == nil {
		return nil, ErrUnavailable
	}
	key, err := t.creds.Get(ctx, secret.Requirement{
		Name:      t.config.SigningKeySecret,
		Required:  true,
		MinLength: t.config.SigningKeyMinLength,
	})
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	return []byte(key), nil
}

// Issue creates a signed token for subject.
func (t *TokenIssuer) Issue(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	key, err := t.signingKey(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    t.config.Issuer,
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.config.TTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates tokenString, returning its session.
func (t *TokenIssuer) Verify(ctx context.Context, tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, ErrMissingCredentials
	}
	key, err := t.signingKey(ctx)
	if err != nil {
		return nil, err
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.config.Issuer),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, ErrTokenMalformed
	case !token.Valid:
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		Subject: claims.Subject,
		ID:      claims.ID,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
