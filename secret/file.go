package secret

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMountRoot is where container runtimes mount file-based secrets.
const DefaultMountRoot = "/run/secrets"

// FileSource reads secrets from files mounted under a root directory.
//
// The value for name is the contents of <root>/<name>, trimmed of
// surrounding whitespace. A missing or empty file is a miss. Any other
// read failure (permissions, a directory in place of a file) is returned
// as-is so the resolver can report it before falling back.
type FileSource struct {
	root string
}

// NewFileSource creates a file source rooted at root.
// An empty root selects DefaultMountRoot.
func NewFileSource(root string) *FileSource {
	if root == "" {
		root = DefaultMountRoot
	}
	return &FileSource{root: root}
}

// Name returns "file".
func (s *FileSource) Name() string { return "file" }

// Lookup reads <root>/<name> and returns its trimmed contents.
func (s *FileSource) Lookup(_ context.Context, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(filepath.Join(s.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read secret file: %w", err)
	}

	value := strings.TrimSpace(string(raw))
	if value == "" {
		// An empty file counts as absent, same as a missing one.
		return "", ErrNotFound
	}
	return value, nil
}

// Ensure FileSource implements Source
var _ Source = (*FileSource)(nil)
