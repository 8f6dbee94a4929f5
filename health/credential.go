package health

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonwraymond/credops/secret"
)

// Store is the slice of the credential store the checker needs: a Get that
// resolves on first use. *credential.Store satisfies it, as does the
// instrumented wrapper around one.
type Store interface {
	Get(ctx context.Context, req secret.Requirement) (string, error)
}

// CredentialChecker reports whether the secrets a service depends on can
// be resolved.
//
// Each check resolves every listed requirement through the store, so a
// passing check doubles as a cache warmer: the first authenticated request
// after readiness finds everything already resolved. Results carry secret
// names and outcomes, never values.
type CredentialChecker struct {
	store Store
	reqs  []secret.Requirement
}

// NewCredentialChecker creates a checker for reqs backed by store.
func NewCredentialChecker(store Store, reqs []secret.Requirement) *CredentialChecker {
	copied := make([]secret.Requirement, len(reqs))
	copy(copied, reqs)
	return &CredentialChecker{store: store, reqs: copied}
}

// Name returns the name of this checker.
func (c *CredentialChecker) Name() string {
	return "credentials"
}

// Check resolves every requirement and classifies the outcomes.
//
// A required secret that is missing, too short, or failing makes the
// result Unhealthy. An optional secret that is present but unusable makes
// it Degraded: the service runs, the feature backed by that secret will
// not. Optional secrets that are simply absent are healthy.
func (c *CredentialChecker) Check(ctx context.Context) Result {
	if c.store == nil {
		return Unhealthy("no credential store", ErrNilStore)
	}

	details := make(map[string]any, len(c.reqs))
	var failedRequired, failedOptional []string
	var errs []error

	for _, req := range c.reqs {
		select {
		case <-ctx.Done():
			return Unhealthy("check cancelled", ctx.Err()).WithDetails(details)
		default:
		}

		value, err := c.store.Get(ctx, req)
		switch {
		case err == nil && value != "":
			details[req.Name] = "ready"
		case err == nil:
			details[req.Name] = "absent"
		default:
			details[req.Name] = outcomeOf(err)
			if req.Required {
				failedRequired = append(failedRequired, req.Name)
			} else {
				failedOptional = append(failedOptional, req.Name)
			}
			errs = append(errs, err)
		}
	}

	switch {
	case len(failedRequired) > 0:
		return Unhealthy(
			fmt.Sprintf("required credentials unavailable: %s", strings.Join(failedRequired, ", ")),
			errors.Join(errs...),
		).WithDetails(details)
	case len(failedOptional) > 0:
		return Degraded(
			fmt.Sprintf("optional credentials unusable: %s", strings.Join(failedOptional, ", ")),
		).WithDetails(details)
	default:
		return Healthy(
			fmt.Sprintf("%d credentials checked", len(c.reqs)),
		).WithDetails(details)
	}
}

// outcomeOf classifies a resolution error for the details map.
func outcomeOf(err error) string {
	var missing *secret.MissingError
	if errors.As(err, &missing) {
		return "missing"
	}
	var weak *secret.WeakError
	if errors.As(err, &weak) {
		return "weak"
	}
	return "error"
}
