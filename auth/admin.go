package auth

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jonwraymond/credops/secret"
)

// Default secret names for the admin account.
const (
	// DefaultUsernameSecret holds the admin username.
	DefaultUsernameSecret = "ADMIN_USERNAME"

	// DefaultPasswordHashSecret holds the bcrypt hash of the admin
	// password, base64 encoded. The base64 wrapping keeps the
	// $-delimited bcrypt text safe to paste into env files.
	DefaultPasswordHashSecret = "ADMIN_PASSWORD_HASH_BASE64"
)

// VerifierConfig configures the admin credential verifier.
type VerifierConfig struct {
	// UsernameSecret names the secret holding the admin username.
	// Default: DefaultUsernameSecret
	UsernameSecret string

	// PasswordHashSecret names the secret holding the base64-encoded
	// bcrypt hash of the admin password.
	// Default: DefaultPasswordHashSecret
	PasswordHashSecret string
}

// Verifier checks admin logins against credentials from the store.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: ErrInvalidCredentials for a mismatch, ErrUnavailable when the
//   credentials cannot be resolved or the stored hash is unusable. End
//   users must see the same response for both.
type Verifier struct {
	config VerifierConfig
	creds  Credentials
}

// NewVerifier creates a verifier backed by creds.
func NewVerifier(config VerifierConfig, creds Credentials) *Verifier {
	// Apply defaults
	if config.UsernameSecret == "" {
		config.UsernameSecret = DefaultUsernameSecret
	}
	if config.PasswordHashSecret == "" {
		config.PasswordHashSecret = DefaultPasswordHashSecret
	}

	return &Verifier{
		config: config,
		creds:  creds,
	}
}

// Verify checks username and password against the admin credentials.
func (v *Verifier) Verify(ctx context.Context, username, password string) error {
	if v == nil || v.creds == nil {
		return ErrUnavailable
	}
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	wantUser, err := v.creds.Get(ctx, secret.Requirement{
		Name:     v.config.UsernameSecret,
		Required: true,
	})
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	encodedHash, err := v.creds.Get(ctx, secret.Requirement{
		Name:     v.config.PasswordHashSecret,
		Required: true,
	})
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	hash, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	usernameOK := ConstantTimeCompare(username, wantUser)

	// The password is always checked so a wrong username costs the same
	// time as a wrong password.
	passErr := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case passErr == nil:
		if !usernameOK {
			return ErrInvalidCredentials
		}
		return nil
	case errors.Is(passErr, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidCredentials
	default:
		// The stored hash is not usable bcrypt text.
		return errors.Join(ErrUnavailable, passErr)
	}
}

// HashPassword returns the base64-encoded bcrypt hash of password,
// suitable for storing in the admin password-hash secret.
// cost <= 0 selects bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(hash), nil
}

// ConstantTimeCompare performs constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
