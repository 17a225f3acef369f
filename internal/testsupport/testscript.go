package testsupport

import (
	"fmt"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	todoPath  string
	buildErr  error
)

// findModuleRoot walks up from the working directory until it finds
// the directory containing go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

// BuildTodo builds the todo binary once and returns its path.
func BuildTodo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "todo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		todoPath = filepath.Join(binDir, "todo")
		cmd := exec.Command("go", "build", "-o", todoPath, "./cmd/todo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build todo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return todoPath
}

// SetupScriptEnv configures common environment variables for
// testscript: a fresh backend per script, an isolated HOME, and the
// binary path in TODO.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TODO", BuildTodo(t))

	backend := NewBackend()
	server := httptest.NewServer(backend)
	env.Defer(server.Close)
	env.Setenv("TODO_API_BASE", server.URL)
	env.Setenv("TODO_RECORDS_URL", server.URL)

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "todo"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}
