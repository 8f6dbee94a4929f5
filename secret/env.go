package secret

import (
	"context"
	"os"
	"strings"
)

// EnvSource reads secrets from process environment variables.
//
// The variable name is the secret name, unchanged. Variables that are
// unset or empty after trimming are misses.
type EnvSource struct{}

// NewEnvSource creates an environment variable source.
func NewEnvSource() *EnvSource { return &EnvSource{} }

// Name returns "env".
func (s *EnvSource) Name() string { return "env" }

// Lookup returns the trimmed value of the environment variable name.
func (s *EnvSource) Lookup(_ context.Context, name string) (string, error) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return "", ErrNotFound
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", ErrNotFound
	}
	return value, nil
}

// Ensure EnvSource implements Source
var _ Source = (*EnvSource)(nil)
