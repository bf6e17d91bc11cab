package cli

import (
	"fmt"

	"github.com/jkirkwin/Custom-Compiler/internal/config"
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
	Long: `Read and write settings stored at ~/.skelgen/config.yaml.
A .skelgen.yaml in the working directory and SKELGEN_* environment
variables take precedence over these values.`,
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
		value, err := config.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the settings in effect for the working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s = %s\n", config.KeyTemplate, s.TemplatePath)
		fmt.Fprintf(out, "%s = %s\n", config.KeyOutputDir, s.OutputDir)
		fmt.Fprintf(out, "%s = %s\n", config.KeyExtension, s.Extension)
		fmt.Fprintf(out, "%s = %s\n", config.KeyPlaceholder, s.Placeholder)
		fmt.Fprintf(out, "%s = %t\n", config.KeyOverwrite, s.Overwrite)
		fmt.Fprintf(out, "%s = %s\n", config.KeyLogLevel, s.LogLevel)
		fmt.Fprintf(out, "%s = %s\n", config.KeyMinVersion, s.MinVersion)
		if s.ProjectFile != "" {
			fmt.Fprintf(out, "# profile: %s\n", s.ProjectFile)
		}
		return nil
	},
}
