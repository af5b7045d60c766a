package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
)

// ErrNotFound is returned (wrapped) when the executable cannot be located.
var ErrNotFound = errors.New("executable not found")

// Cmd describes a single child-process invocation.
type Cmd struct {
	Name string
	Args []string
	Dir  string

	// Stdout and Stderr receive the child's output in addition to the
	// captured Result buffers. Nil writers are ignored.
	Stdout io.Writer
	Stderr io.Writer

	// Discard drops all output, including the captured stderr.
	Discard bool
}

// String renders the command line for messages.
func (c Cmd) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result captures the outcome of a process that was launched.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// FailedError reports a process that ran but exited non-zero.
type FailedError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *FailedError) Error() string {
	cmdline := e.Command
	if len(e.Args) > 0 {
		cmdline += " " + strings.Join(e.Args, " ")
	}
	msg := fmt.Sprintf("%s exited with code %d", cmdline, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Check converts a non-zero exit into a *FailedError.
func (r *Result) Check(c Cmd) error {
	if r == nil || r.ExitCode == 0 {
		return nil
	}
	return &FailedError{
		Command:  c.Name,
		Args:     c.Args,
		ExitCode: r.ExitCode,
		Stderr:   r.Stderr,
	}
}

// Runner launches child processes.
type Runner interface {
	// Run starts the command and waits for it to exit. A non-zero exit code
	// is reported in the Result, not as an error. The error is non-nil only
	// when the process could not be launched; it wraps ErrNotFound when the
	// executable does not exist.
	Run(ctx context.Context, c Cmd) (*Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	Logger *slog.Logger
}

// NewExecRunner returns an ExecRunner. A nil logger discards trace output.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{Logger: logger}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Cmd) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("exec", "cmd", c.String(), "dir", c.Dir)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	if !c.Discard {
		cmd.Stdout = teeWriter(&stdoutBuf, c.Stdout)
		cmd.Stderr = teeWriter(&stderrBuf, c.Stderr)
	}

	err := cmd.Run()
	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logger.Debug("exit", "cmd", c.Name, "code", result.ExitCode)
			return result, nil
		}
		if isNotFound(err) {
			logger.Debug("not found", "cmd", c.Name)
			return nil, fmt.Errorf("%s: %w", c.Name, ErrNotFound)
		}
		return nil, fmt.Errorf("launching %s: %w", c.Name, err)
	}

	logger.Debug("exit", "cmd", c.Name, "code", 0)
	return result, nil
}

// RunChecked runs c and turns a non-zero exit into a *FailedError.
func RunChecked(ctx context.Context, r Runner, c Cmd) (*Result, error) {
	res, err := r.Run(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := res.Check(c); err != nil {
		return res, err
	}
	return res, nil
}

func isNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	// A missing working directory also reports ENOENT, but as a chdir failure.
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Op == "chdir" {
		return false
	}
	return errors.Is(err, fs.ErrNotExist)
}

func teeWriter(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
