package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestHome creates a temp home directory with a config dir and
// sets HOME, so tests never read the developer's real configuration.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "todo"), 0o755); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	return homeDir
}
