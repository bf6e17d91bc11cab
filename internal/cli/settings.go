package cli

import (
	"fmt"
	"os"

	"github.com/jkirkwin/Custom-Compiler/internal/config"
	"github.com/jkirkwin/Custom-Compiler/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fsys is the filesystem every command reads and writes.
var fsys afero.Fs = afero.NewOsFs()

// loadSettings resolves settings for the working directory and builds the
// diagnostic logger on the command's stderr.
func loadSettings(cmd *cobra.Command) (*config.Settings, *logrus.Logger, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving working directory: %w", err)
	}

	settings, err := config.Load(wd)
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.WithFields(logrus.Fields{
		"template":   settings.TemplatePath,
		"output_dir": settings.OutputDir,
		"profile":    settings.ProjectFile,
	}).Debug("settings resolved")

	return settings, logger, nil
}
