package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/right-cli/right/internal/process"
)

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-02"
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = "", "", "" })
	env := newTestEnv(t, "proj")

	out, err := runCLI(t, env, process.NewFakeRunner(), nil, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "right version 1.2.3 (commit: abc123, built: 2026-01-02)\n"; out != want {
		t.Errorf("version = %q, want %q", out, want)
	}

	out, err = runCLI(t, env, process.NewFakeRunner(), nil, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}

	out, err = runCLI(t, env, process.NewFakeRunner(), nil, "version", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if info["commit"] != "abc123" {
		t.Errorf("info = %v", info)
	}
}
