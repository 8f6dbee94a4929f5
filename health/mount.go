package health

import (
	"context"
	"fmt"
	"os"

	"github.com/jonwraymond/credops/secret"
)

// MountCheckerConfig configures the secrets mount checker.
type MountCheckerConfig struct {
	// Root is the directory file-based secrets are mounted under.
	// Default: secret.DefaultMountRoot
	Root string
}

// MountChecker inspects the directory file-based secrets are served from.
//
// Resolution treats an unreadable mount as a miss and falls back to the
// environment, so a broken mount never fails requests outright. It does
// change where values come from, which is exactly what this checker makes
// visible: absent mount is healthy (environment-only deployment), present
// but unreadable is degraded.
type MountChecker struct {
	config MountCheckerConfig
}

// NewMountChecker creates a new secrets mount checker.
func NewMountChecker(config MountCheckerConfig) *MountChecker {
	if config.Root == "" {
		config.Root = secret.DefaultMountRoot
	}
	return &MountChecker{config: config}
}

// Name returns the name of this checker.
func (m *MountChecker) Name() string {
	return "mount"
}

// Check performs the mount health check.
func (m *MountChecker) Check(ctx context.Context) Result {
	// Check context first
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	root := m.config.Root

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return Healthy("secrets mount absent; resolving from environment").WithDetails(map[string]any{
			"root":    root,
			"present": false,
		})
	}
	if err != nil {
		return Degraded(
			fmt.Sprintf("secrets mount inaccessible: %s", root),
		).WithDetails(map[string]any{
			"root":    root,
			"present": true,
			"error":   err.Error(),
		})
	}
	if !info.IsDir() {
		return Degraded(
			fmt.Sprintf("secrets mount is not a directory: %s", root),
		).WithDetails(map[string]any{
			"root":    root,
			"present": true,
		})
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return Degraded(
			fmt.Sprintf("secrets mount unreadable: %s", root),
		).WithDetails(map[string]any{
			"root":    root,
			"present": true,
			"error":   err.Error(),
		})
	}

	// Count regular entries only; runtimes mount secrets as files or as
	// symlinked files, never nested directories.
	mounted := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			mounted++
		}
	}

	return Healthy(
		fmt.Sprintf("%d secrets mounted", mounted),
	).WithDetails(map[string]any{
		"root":    root,
		"present": true,
		"mounted": mounted,
	})
}
