package secret

import (
	"context"
	"strings"
)

// StaticSource serves secrets from a fixed in-memory map.
//
// It is useful in tests and for embedding known values ahead of the
// default chain. The map is copied at construction and never mutated.
type StaticSource struct {
	values map[string]string
}

// NewStaticSource creates a static source from values.
func NewStaticSource(values map[string]string) *StaticSource {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &StaticSource{values: copied}
}

// Name returns "static".
func (s *StaticSource) Name() string { return "static" }

// Lookup returns the trimmed value for name.
func (s *StaticSource) Lookup(_ context.Context, name string) (string, error) {
	raw, ok := s.values[name]
	if !ok {
		return "", ErrNotFound
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", ErrNotFound
	}
	return value, nil
}

// Ensure StaticSource implements Source
var _ Source = (*StaticSource)(nil)
