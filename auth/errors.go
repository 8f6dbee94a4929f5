package auth

import "errors"

// Sentinel errors for authentication.
var (
	// ErrMissingCredentials indicates a login attempt without a username
	// or password.
	ErrMissingCredentials = errors.New("auth: missing credentials")

	// ErrInvalidCredentials indicates a username or password that does
	// not match.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnavailable indicates the admin credentials or signing key could
	// not be resolved. The cause belongs in operator logs, never in the
	// response.
	ErrUnavailable = errors.New("auth: authentication unavailable")

	// ErrTokenExpired indicates an expired session token.
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrTokenMalformed indicates a token that could not be parsed.
	ErrTokenMalformed = errors.New("auth: token malformed")

	// ErrMissingSubject indicates a token issue request without a subject.
	ErrMissingSubject = errors.New("auth: subject is required")

	// ErrThrottled indicates too many recent attempts for the same key.
	ErrThrottled = errors.New("auth: too many attempts")
)
