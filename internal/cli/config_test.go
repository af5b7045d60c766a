package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/right-cli/right/internal/config"
	"github.com/right-cli/right/internal/process"
)

func TestConfig_SetThenGet(t *testing.T) {
	env := newTestEnv(t, "proj")

	out, err := runCLI(t, env, process.NewFakeRunner(), nil, "config", "set", "work_branch", "develop")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(out, "Set work_branch = develop") {
		t.Errorf("output = %q", out)
	}

	out, err = runCLI(t, env, process.NewFakeRunner(), nil, "config", "get", "work_branch")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "develop" {
		t.Errorf("config get = %q, want develop", out)
	}
}

func TestConfig_GetDefault(t *testing.T) {
	env := newTestEnv(t, "proj")
	out, err := runCLI(t, env, process.NewFakeRunner(), nil, "config", "get", "git_min_version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "2.28.0" {
		t.Errorf("config get = %q", out)
	}
}

func TestConfig_UnknownKey(t *testing.T) {
	env := newTestEnv(t, "proj")
	if _, err := runCLI(t, env, process.NewFakeRunner(), nil, "config", "get", "mirror"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := runCLI(t, env, process.NewFakeRunner(), nil, "config", "set", "mirror", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestConfig_List(t *testing.T) {
	env := newTestEnv(t, "proj")
	out, err := runCLI(t, env, process.NewFakeRunner(), nil, "config", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "default_branch = main (default)\n") || !strings.Contains(out, "marker_file = __init__.py (default)\n") {
		t.Errorf("config list = %q", out)
	}
}

func TestConfig_WritesUnderResolvedHome(t *testing.T) {
	env := newTestEnv(t, "proj")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())

	if _, err := runCLI(t, env, process.NewFakeRunner(), nil, "config", "set", "work_branch", "develop"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := os.Stat(config.FilePath(env.HomeDir)); err != nil {
		t.Errorf("config should be written under %s: %v", env.HomeDir, err)
	}

	out, err := runCLI(t, env, process.NewFakeRunner(), nil, "config", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "work_branch = develop\n") {
		t.Errorf("config list = %q", out)
	}
}
