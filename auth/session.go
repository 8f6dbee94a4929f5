package auth

import "time"

// Session describes a verified session token.
type Session struct {
	// Subject is the authenticated principal.
	Subject string

	// ID is the token's unique identifier (jti claim).
	ID string

	// IssuedAt is when the token was issued.
	IssuedAt time.Time

	// ExpiresAt is when the token expires.
	ExpiresAt time.Time
}
