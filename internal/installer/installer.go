package installer

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/right-cli/right/internal/branding"
	"github.com/right-cli/right/internal/platform"
	"github.com/right-cli/right/internal/probe"
	"github.com/right-cli/right/internal/process"
	"github.com/right-cli/right/internal/ui"
)

//go:embed scripts/install-poetry.py
var bootstrapScript []byte

// DefaultTool is the dependency manager installed and verified.
const DefaultTool = "poetry"

const scriptName = "install-poetry.py"

// DefaultInterpreters returns the Python commands tried in order on goos.
func DefaultInterpreters(goos string) []string {
	if goos == "windows" {
		return []string{"py", "python"}
	}
	return []string{"python3", "python"}
}

// Installer runs the bundled installer script and verifies the tool.
type Installer struct {
	Runner       process.Runner
	Interpreters []string
	Tool         string
	Script       []byte
	TempDir      string // Where the script is written; os.TempDir() if empty.
	Printer      *ui.Printer
}

// New returns an Installer with the platform defaults.
func New(r process.Runner, p *ui.Printer) *Installer {
	return &Installer{
		Runner:       r,
		Interpreters: DefaultInterpreters(runtime.GOOS),
		Tool:         DefaultTool,
		Script:       bootstrapScript,
		Printer:      p,
	}
}

// Install runs the installer and reports whether the tool is invocable
// afterwards. A missing interpreter or a tool that still cannot be found
// prints a remediation message and returns false with a nil error. An
// installer that exits non-zero returns a *process.FailedError.
func (i *Installer) Install(ctx context.Context) (bool, error) {
	p := i.Printer
	if p == nil {
		p = ui.Discard()
	}
	tool := i.Tool
	if tool == "" {
		tool = DefaultTool
	}

	script, cleanup, err := i.writeScript()
	if err != nil {
		return false, err
	}
	defer cleanup()

	interpreter, err := i.runScript(ctx, script)
	if errors.Is(err, process.ErrNotFound) {
		p.Status(ui.TagFail, "Python was not found (tried %v). Install it from %s", i.interpreters(), branding.PythonDocsURL())
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("installing %s: %w", tool, err)
	}
	p.Status(ui.TagOK, "Ran %s installer with %s", tool, interpreter)

	ok, err := probe.ToolIsAvailable(ctx, i.Runner, tool)
	if err != nil {
		return false, fmt.Errorf("verifying %s: %w", tool, err)
	}
	if !ok {
		p.Status(ui.TagFail, "%s is not on PATH after installation. See %s", tool, branding.PoetryDocsURL())
		return false, nil
	}
	p.Status(ui.TagOK, "%s is available", tool)
	return true, nil
}

// runScript executes script with the first interpreter that exists and
// returns the interpreter used.
func (i *Installer) runScript(ctx context.Context, script string) (string, error) {
	for _, interp := range i.interpreters() {
		c := process.Cmd{Name: interp, Args: []string{script}}
		_, err := process.RunChecked(ctx, i.Runner, c)
		if errors.Is(err, process.ErrNotFound) {
			continue
		}
		return interp, err
	}
	return "", fmt.Errorf("no python interpreter: %w", process.ErrNotFound)
}

// interpreters returns the configured list or the platform defaults.
func (i *Installer) interpreters() []string {
	if len(i.Interpreters) == 0 {
		return DefaultInterpreters(runtime.GOOS)
	}
	return i.Interpreters
}

func (i *Installer) writeScript() (string, func(), error) {
	content := i.Script
	if len(content) == 0 {
		content = bootstrapScript
	}

	dir, err := os.MkdirTemp(i.TempDir, "right-installer-")
	if err != nil {
		return "", nil, fmt.Errorf("creating installer directory: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	path := filepath.Join(dir, scriptName)
	if err := os.WriteFile(path, content, 0600); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing installer script: %w", err)
	}
	if err := platform.Chmod(path, 0700); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return path, cleanup, nil
}
