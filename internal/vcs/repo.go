package vcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/right-cli/right/internal/branding"
	"github.com/right-cli/right/internal/process"
)

// GitBinary is the executable invoked for repository operations.
const GitBinary = "git"

// Default branch names.
const (
	DefaultBranch = "main"
	WorkBranch    = "dev"
)

// ErrGitNotFound is returned when the git executable is not on PATH.
var ErrGitNotFound = fmt.Errorf("git is not installed or not on PATH (see %s)", branding.GitDocsURL())

// RepoOptions configures InitRepository. Empty fields fall back to the
// package defaults.
type RepoOptions struct {
	DefaultBranch string
	WorkBranch    string
}

func (o RepoOptions) withDefaults() RepoOptions {
	if o.DefaultBranch == "" {
		o.DefaultBranch = DefaultBranch
	}
	if o.WorkBranch == "" {
		o.WorkBranch = WorkBranch
	}
	return o
}

// InitRepository runs `git init -b <default>` followed by
// `git checkout -b <work>` in dir. Output is discarded except stderr, which is
// kept for the error. A failing step stops the sequence; nothing is rolled
// back.
func InitRepository(ctx context.Context, r process.Runner, dir string, opts RepoOptions) error {
	opts = opts.withDefaults()

	steps := [][]string{
		{"init", "-b", opts.DefaultBranch},
		{"checkout", "-b", opts.WorkBranch},
	}
	for _, args := range steps {
		c := process.Cmd{Name: GitBinary, Args: args, Dir: dir}
		if _, err := process.RunChecked(ctx, r, c); err != nil {
			if errors.Is(err, process.ErrNotFound) {
				return fmt.Errorf("%w: %w", ErrGitNotFound, process.ErrNotFound)
			}
			return fmt.Errorf("initializing repository: %w", err)
		}
	}
	return nil
}
