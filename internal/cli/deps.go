package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/right-cli/right/internal/platform"
	"github.com/right-cli/right/internal/process"
	"github.com/right-cli/right/internal/ui"
)

// Dependencies holds the collaborators every command shares. Tests replace
// the package-level instance with fakes.
type Dependencies struct {
	Runner  process.Runner
	Printer *ui.Printer
	Logger  *slog.Logger
	Env     func() (platform.Env, error)
	Prompt  NamePrompter
}

var deps *Dependencies

// newDependencies wires the real runner and printer. Tracing goes to stderr
// only when verbose is set.
func newDependencies(stdout, stderr io.Writer, verbose bool) *Dependencies {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return &Dependencies{
		Runner:  process.NewExecRunner(logger),
		Printer: ui.ForWriter(stdout),
		Logger:  logger,
		Env:     platform.Current,
		Prompt:  newNamePrompter(os.Stdin, stdout),
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
