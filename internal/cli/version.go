package cli

import (
	"encoding/json"
	"fmt"

	"github.com/right-cli/right/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		return nil
	},
}
