package secret

import (
	"errors"
	"fmt"
)

// Sentinel errors for secret resolution.
var (
	// ErrNotFound is returned by a Source that has no usable value for a name.
	ErrNotFound = errors.New("secret: not found")

	// ErrInvalidName indicates a name that is not usable as both a file name
	// and an environment variable key.
	ErrInvalidName = errors.New("secret: invalid secret name")
)

// MissingError reports a required secret that no source could provide.
type MissingError struct {
	// Name is the secret that was requested.
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("secret: %q is required but was not found in any source", e.Name)
}

// WeakError reports a secret value shorter than the caller's minimum.
// It carries lengths only; the value itself is never included.
type WeakError struct {
	Name      string
	MinLength int
	Length    int
}

func (e *WeakError) Error() string {
	return fmt.Sprintf("secret: %q is too short: %d bytes, need at least %d", e.Name, e.Length, e.MinLength)
}

// Issue describes a source failure that was degraded to a miss.
//
// Issues are delivered to ResolverConfig.OnIssue so operators can tell a
// mounted file that cannot be read apart from one that does not exist.
// They are never returned to callers and never carry the secret value.
type Issue struct {
	// Name is the secret being resolved.
	Name string

	// Source is the Name() of the failing source.
	Source string

	// Err is the underlying failure.
	Err error
}
