//go:build integration

package integration_test

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/right-cli/right/internal/platform"
	"github.com/right-cli/right/internal/process"
)

// setupTestEnv creates an isolated working and home directory and points
// RIGHT_WORKDIR / RIGHT_HOMEDIR at them, so platform.Current resolves to the
// sandbox. The env vars are restored after the test.
func setupTestEnv(t *testing.T, projectDir string) platform.Env {
	t.Helper()

	base := t.TempDir()
	work := filepath.Join(base, projectDir)
	home := filepath.Join(base, "home")
	for _, dir := range []string{work, home} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}

	t.Setenv("RIGHT_WORKDIR", work)
	t.Setenv("RIGHT_HOMEDIR", home)
	t.Setenv("HOME", home)

	env, err := platform.Current()
	if err != nil {
		t.Fatalf("platform.Current: %v", err)
	}
	return env
}

// requireGit skips the test when git is not installed.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func newRunner() process.Runner {
	return process.NewExecRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
