package secret

import "context"

// Source looks up secret values by name.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Lookup returns ErrNotFound when the source has no usable value
//   for the name; any other error is a source failure the resolver degrades
//   to a miss and reports as an Issue.
// - Values: returned values are trimmed and non-empty. Implementations must
//   not log secret values.
type Source interface {
	// Name identifies the source in diagnostics ("file", "env", "static").
	Name() string

	// Lookup returns the value for name, or ErrNotFound.
	Lookup(ctx context.Context, name string) (string, error)
}
