package secret

import (
	"context"
	"errors"
	"regexp"
)

// Secret names double as environment keys and as single path segments
// under the file mount root, so both grammars apply at once.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName reports whether name can be resolved safely.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// Requirement declares what a caller needs from one secret.
type Requirement struct {
	// Name is the secret name, e.g. "JWT_SECRET". It must satisfy ValidateName.
	Name string

	// Required makes absence an error. Optional secrets resolve to "".
	Required bool

	// MinLength is the minimum value length in bytes. Zero disables the check.
	MinLength int
}

// Validate checks value against req.
//
// An empty value means the secret was absent: an error for required
// secrets, success for optional ones. Sources never produce empty values,
// so the two cases cannot be confused.
func Validate(req Requirement, value string) error {
	if value == "" {
		if req.Required {
			return &MissingError{Name: req.Name}
		}
		return nil
	}
	if req.MinLength > 0 && len(value) < req.MinLength {
		return &WeakError{Name: req.Name, MinLength: req.MinLength, Length: len(value)}
	}
	return nil
}

// DefaultSources returns the standard chain: files mounted under
// DefaultMountRoot, then process environment variables.
func DefaultSources() []Source {
	return []Source{NewFileSource(""), NewEnvSource()}
}

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	// Sources are consulted in order; the first hit wins. Nil entries are
	// skipped. Empty selects DefaultSources.
	Sources []Source

	// OnIssue receives a diagnostic whenever a source fails for a reason
	// other than a plain miss, for example a mounted file that exists but
	// cannot be read. The failing source is treated as a miss and
	// resolution continues. Optional; must not block.
	OnIssue func(Issue)
}

// Resolver resolves named secrets from an ordered set of sources.
//
// Contract:
// - Concurrency: safe for concurrent use when its sources are.
// - Errors: *MissingError for absent required secrets, *WeakError for
//   values below the caller's minimum length. Source failures degrade to
//   misses and surface only through OnIssue.
// - Values: never logged, never embedded in errors.
type Resolver struct {
	sources []Source
	onIssue func(Issue)
}

// NewResolver creates a resolver from cfg, applying defaults.
func NewResolver(cfg ResolverConfig) *Resolver {
	sources := make([]Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		if s == nil {
			continue
		}
		sources = append(sources, s)
	}
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	return &Resolver{sources: sources, onIssue: cfg.OnIssue}
}

// Resolve returns the value for req, consulting sources in order.
//
// The first source with a value wins, even if that value then fails the
// length check: a short mounted file is an error, not a reason to fall
// back to the environment.
func (r *Resolver) Resolve(ctx context.Context, req Requirement) (string, error) {
	if err := ValidateName(req.Name); err != nil {
		return "", err
	}

	value := ""
	for _, src := range r.sources {
		v, err := src.Lookup(ctx, req.Name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			r.report(Issue{Name: req.Name, Source: src.Name(), Err: err})
			continue
		}
		if v == "" {
			// Sources must not return empty values; treat as a miss.
			continue
		}
		value = v
		break
	}

	if err := Validate(req, value); err != nil {
		return "", err
	}
	return value, nil
}

func (r *Resolver) report(issue Issue) {
	if r.onIssue != nil {
		r.onIssue(issue)
	}
}
