package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExecRunner_NotFound(t *testing.T) {
	r := NewExecRunner(nil)
	_, err := r.Run(context.Background(), Cmd{Name: "right-test-no-such-binary", Args: []string{"--version"}})
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestExecRunner_NotFoundAbsolutePath(t *testing.T) {
	r := NewExecRunner(nil)
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := r.Run(context.Background(), Cmd{Name: missing})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestExecRunner_MissingDirIsNotNotFound(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not available, skipping")
	}
	r := NewExecRunner(nil)
	_, err := r.Run(context.Background(), Cmd{Name: "go", Args: []string{"version"}, Dir: filepath.Join(t.TempDir(), "gone")})
	if err == nil {
		t.Fatal("expected error for missing working directory")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("missing dir should not be reported as ErrNotFound: %v", err)
	}
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not available, skipping")
	}
	var stream bytes.Buffer
	r := NewExecRunner(nil)
	res, err := r.Run(context.Background(), Cmd{Name: "go", Args: []string{"version"}, Stdout: &stream})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "go version") {
		t.Errorf("Stdout = %q, want it to contain %q", res.Stdout, "go version")
	}
	if stream.String() != res.Stdout {
		t.Errorf("streamed output %q differs from captured %q", stream.String(), res.Stdout)
	}
}

func TestExecRunner_Discard(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not available, skipping")
	}
	r := NewExecRunner(nil)
	res, err := r.Run(context.Background(), Cmd{Name: "go", Args: []string{"version"}, Discard: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "" || res.Stderr != "" {
		t.Errorf("expected no captured output, got stdout=%q stderr=%q", res.Stdout, res.Stderr)
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
	r := NewExecRunner(nil)
	c := Cmd{Name: "sh", Args: []string{"-c", "echo boom >&2; exit 3"}}
	res, err := r.Run(context.Background(), c)
	if err != nil {
		t.Fatalf("non-zero exit should not be a launch error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}

	_, err = RunChecked(context.Background(), r, c)
	var failed *FailedError
	if !errors.As(err, &failed) {
		t.Fatalf("RunChecked error = %v, want *FailedError", err)
	}
	if failed.ExitCode != 3 {
		t.Errorf("FailedError.ExitCode = %d, want 3", failed.ExitCode)
	}
	if !strings.Contains(failed.Stderr, "boom") {
		t.Errorf("FailedError.Stderr = %q, want it to contain %q", failed.Stderr, "boom")
	}
}

func TestFailedError_Message(t *testing.T) {
	err := &FailedError{Command: "git", Args: []string{"init", "-b", "main"}, ExitCode: 128, Stderr: "fatal: bad\n"}
	want := "git init -b main exited with code 128: fatal: bad"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestResultCheck_ZeroExit(t *testing.T) {
	res := &Result{}
	if err := res.Check(Cmd{Name: "git"}); err != nil {
		t.Errorf("Check() on zero exit = %v, want nil", err)
	}
}

func TestCmdString(t *testing.T) {
	c := Cmd{Name: "git", Args: []string{"checkout", "-b", "dev"}}
	if got := c.String(); got != "git checkout -b dev" {
		t.Errorf("String() = %q", got)
	}
	if got := (Cmd{Name: "poetry"}).String(); got != "poetry" {
		t.Errorf("String() = %q", got)
	}
}
