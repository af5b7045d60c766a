package cli

import (
	"fmt"

	"github.com/right-cli/right/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.right/config.yaml.

Every key can also be set through the environment, e.g. RIGHT_WORK_BRANCH=develop.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnown(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			suffix := ""
			if !config.IsSet(key) {
				suffix = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s%s\n", key, config.Get(key), suffix)
		}
		return nil
	},
}
