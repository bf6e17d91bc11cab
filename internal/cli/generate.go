package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jkirkwin/Custom-Compiler/internal/branding"
	"github.com/jkirkwin/Custom-Compiler/internal/config"
	"github.com/jkirkwin/Custom-Compiler/internal/profile"
	"github.com/jkirkwin/Custom-Compiler/internal/skeleton"
	"github.com/jkirkwin/Custom-Compiler/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) != 1 || args[0] == "" {
		printUsage(out)
		return nil
	}
	name := args[0]

	settings, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := validateProfile(fsys, settings); err != nil {
		return err
	}
	if err := version.Require(buildVersion, settings.MinVersion); err != nil {
		return err
	}

	gen := skeleton.New(fsys, settings.Options(), logger)
	result, err := gen.Generate(name)
	if err != nil {
		if errors.Is(err, skeleton.ErrUsage) {
			printUsage(out)
			return nil
		}
		if errors.Is(err, skeleton.ErrOutputExists) {
			return fmt.Errorf("%w (set overwrite: true to replace it)", err)
		}
		return err
	}

	fmt.Fprintf(out, "Added skeleton for %s\n", result.Path)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <class_name>\n", branding.CLIName())
	fmt.Fprintf(w, "E.g.   %s MyAstNode\n", branding.CLIName())
}

// validateProfile rejects a project profile that does not match the schema.
func validateProfile(fsys afero.Fs, s *config.Settings) error {
	if s.ProjectFile == "" {
		return nil
	}
	result, err := profile.ValidateFile(fsys, s.ProjectFile)
	if err != nil {
		return err
	}
	if result.Valid {
		return nil
	}
	return fmt.Errorf("invalid profile %s: %s", s.ProjectFile, result.Summary())
}
