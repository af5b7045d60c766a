package cli

import (
	"github.com/right-cli/right/internal/branding"
	"github.com/right-cli/right/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace every external command on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a standard project layout (docs, tests, assets, scripts and a
package directory), and can initialize a git repository and install Poetry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if deps == nil {
			deps = newDependencies(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)
		}
		env, err := deps.Env()
		if err != nil {
			return err
		}
		return config.Load(env.HomeDir)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}
