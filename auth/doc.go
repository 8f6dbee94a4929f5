// Package auth provides admin authentication on top of the credential store.
//
// It supports password verification against a bcrypt hash (Verifier),
// HS256 session tokens (TokenIssuer), and per-key login throttling
// (AttemptLimiter). All secret material is fetched through the credential
// store; nothing in this package reads files or the environment directly.
//
// Failures divide into two kinds that end users must not be able to tell
// apart: ErrInvalidCredentials (the caller's fault) and ErrUnavailable
// (the deployment's fault). Map both to the same opaque response and keep
// the cause in operator logs.
package auth
