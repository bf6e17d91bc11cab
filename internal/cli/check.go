package cli

import (
	"fmt"

	"github.com/jkirkwin/Custom-Compiler/internal/doctor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the template, profile, and output directory",
	Long:  `Run diagnostic checks on the working directory before generating.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		report := doctor.Run(cmd.OutOrStdout(), fsys, settings, buildVersion)
		if !report.OK() {
			return fmt.Errorf("%d check(s) failed", report.Problems)
		}
		return nil
	},
}
