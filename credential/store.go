package credential

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/credops/secret"
)

// Resolver resolves one secret requirement to a value.
//
// *secret.Resolver satisfies it; decorators can wrap it to add logging
// or metrics around first use without the store knowing.
type Resolver interface {
	Resolve(ctx context.Context, req secret.Requirement) (string, error)
}

// Store memoizes resolved secrets for the process lifetime.
//
// Contract:
// - Concurrency: safe for concurrent use. Concurrent first use of one
//   name performs a single resolution; other names are never blocked by it.
// - Caching: only successful resolutions are stored. A failure leaves the
//   name unresolved, so a later call retries from the sources.
// - Lifetime: a stored value never changes and is never evicted. There is
//   no invalidation API.
type Store struct {
	resolver Resolver

	mu     sync.RWMutex
	values map[string]string

	flights singleflight.Group // one resolution in flight per name
}

// NewStore creates a store over resolver.
func NewStore(resolver Resolver) *Store {
	return &Store{
		resolver: resolver,
		values:   make(map[string]string),
	}
}

// Get returns the value for req, resolving it on first use.
//
// The underlying resolution carries no requirements; each caller's
// Requirement is applied to the shared outcome afterwards. Concurrent
// callers with different minimum lengths therefore see the same bytes
// and their own verdicts, with a single round of source I/O.
//
// A name first resolved as optional-and-absent is cached as absent; a
// later required call for that name fails without consulting the
// sources again, even if the secret has been provisioned in the
// meantime. Only a process restart picks up such a secret.
func (s *Store) Get(ctx context.Context, req secret.Requirement) (string, error) {
	if s == nil || s.resolver == nil {
		return "", ErrNilResolver
	}
	if err := secret.ValidateName(req.Name); err != nil {
		return "", err
	}

	s.mu.RLock()
	value, ok := s.values[req.Name]
	s.mu.RUnlock()
	if ok {
		if err := secret.Validate(req, value); err != nil {
			return "", err
		}
		return value, nil
	}

	raw, err := s.resolve(ctx, req.Name)
	if err != nil {
		return "", err
	}

	// First writer wins so a cached value never changes. A caller whose
	// flight lost the race adopts the stored value and validates that.
	s.mu.Lock()
	stored, ok := s.values[req.Name]
	if ok {
		raw = stored
	}
	verr := secret.Validate(req, raw)
	if !ok && verr == nil {
		s.values[req.Name] = raw
	}
	s.mu.Unlock()

	if verr != nil {
		return "", verr
	}
	return raw, nil
}

// Cached reports whether name has already been resolved and stored.
func (s *Store) Cached(name string) bool {
	s.mu.RLock()
	_, ok := s.values[name]
	s.mu.RUnlock()
	return ok
}

// resolve performs the per-name single flight around the resolver.
func (s *Store) resolve(ctx context.Context, name string) (string, error) {
	v, err, _ := s.flights.Do(name, func() (any, error) {
		// A previous flight may have stored the value after our miss.
		s.mu.RLock()
		value, ok := s.values[name]
		s.mu.RUnlock()
		if ok {
			return value, nil
		}
		return s.resolver.Resolve(ctx, secret.Requirement{Name: name})
	})
	if err != nil {
		return "", err
	}
	value, _ := v.(string)
	return value, nil
}
