package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates name inside a fresh temp dir with the given body.
// It returns the absolute path and fails the test immediately on error.
func WriteFile(t *testing.T, name, body string) string {
	t.Helper()

	// t.TempDir usually returns an absolute path already.
	absDir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absDir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644), "Failed to write %s", name)
	return path
}
