package credential

import "errors"

// Sentinel errors for the credential store.
var (
	// ErrNilResolver indicates a Store constructed without a resolver.
	ErrNilResolver = errors.New("credential: resolver is nil")
)
