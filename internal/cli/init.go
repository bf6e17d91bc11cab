package cli

import (
	"fmt"

	"github.com/jkirkwin/Custom-Compiler/internal/branding"
	"github.com/jkirkwin/Custom-Compiler/internal/skeleton"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in AST node template",
	Long: `Write the built-in AST node template to the configured template path.
An existing template is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		result, err := skeleton.New(fsys, settings.Options(), logger).Init()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created template at %s (%d lines)\n", result.Path, result.Lines)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. Edit %s to match your node base class\n", result.Path)
		fmt.Fprintf(out, "  2. Run '%s MyAstNode' to generate a node\n", branding.CLIName())
		return nil
	},
}
