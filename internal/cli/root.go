package cli

import (
	"fmt"

	"github.com/jkirkwin/Custom-Compiler/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <class_name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies the AST node template, replacing its placeholder
with the given class name, and writes the result into the ast directory.

Example:
  ` + branding.CLIName() + ` MyAstNode`,
	// Argument count is checked by the command itself so a wrong count
	// prints usage and succeeds.
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runGenerate,
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr; the caller decides the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
