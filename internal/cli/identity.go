package cli

import (
	"fmt"

	"github.com/right-cli/right/internal/ui"
	"github.com/right-cli/right/internal/vcs"
	"github.com/spf13/cobra"
)

var (
	identityLocal  bool
	identityGlobal bool
)

func init() {
	identityCmd.Flags().BoolVar(&identityLocal, "local", false, "Read ./.git/config")
	identityCmd.Flags().BoolVar(&identityGlobal, "global", false, "Read ~/.gitconfig")
	rootCmd.AddCommand(identityCmd)
}

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Show the git author used for new projects",
	Long: `Show the author name and email read from git configuration.

With --local or --global only that file is consulted. With both, or with
neither, the local repository config is tried first and ~/.gitconfig second.
The first file that exists decides; a file without both user.name and
user.email counts as no author.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := deps.Env()
		if err != nil {
			return err
		}

		scopes := identityScopes(identityLocal, identityGlobal)
		id, scope, err := vcs.ResolveIdentityFrom(env.WorkDir, env.HomeDir, scopes)
		if err != nil {
			return fmt.Errorf("resolving git author: %w", err)
		}

		p := deps.Printer
		if id.IsZero() {
			p.Status(ui.TagMiss, "No git author configured")
			p.Line("Set one with: git config --global user.name \"Your Name\" && git config --global user.email you@example.com")
			return nil
		}
		path, _ := vcs.ConfigPath(scope, env.WorkDir, env.HomeDir)
		p.Status(ui.TagOK, "%s (%s: %s)", id, scope, path)
		return nil
	},
}

// identityScopes maps the flags to a lookup order. No flag behaves like both.
func identityScopes(local, global bool) []vcs.Scope {
	if local == global {
		return vcs.DefaultScopes
	}
	if local {
		return []vcs.Scope{vcs.ScopeLocal}
	}
	return []vcs.Scope{vcs.ScopeGlobal}
}
