package credential

import (
	"context"

	"github.com/jonwraymond/credops/secret"
)

// Credential is a handle to one named secret in a Store.
//
// Handles are cheap and can be created at wiring time, long before the
// secret is first needed. The underlying value is resolved on the first
// Value call and served from the store afterwards.
type Credential struct {
	store *Store
	req   secret.Requirement
}

// Credential returns a handle for req backed by s.
func (s *Store) Credential(req secret.Requirement) *Credential {
	return &Credential{store: s, req: req}
}

// Name returns the secret name the handle refers to.
func (c *Credential) Name() string { return c.req.Name }

// Value returns the resolved secret, resolving it on first use.
func (c *Credential) Value(ctx context.Context) (string, error) {
	return c.store.Get(ctx, c.req)
}
