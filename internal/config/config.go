package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jkirkwin/Custom-Compiler/internal/branding"
	"github.com/jkirkwin/Custom-Compiler/internal/logging"
	"github.com/jkirkwin/Custom-Compiler/internal/profile"
	"github.com/jkirkwin/Custom-Compiler/internal/skeleton"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"

	// ProjectFile is the per-project profile looked up in the working directory.
	ProjectFile = ".skelgen.yaml"
)

// Setting keys.
const (
	KeyTemplate    = "template"
	KeyOutputDir   = "output_dir"
	KeyExtension   = "extension"
	KeyPlaceholder = "placeholder"
	KeyOverwrite   = "overwrite"
	KeyLogLevel    = "log_level"
	KeyMinVersion  = "min_version"
)

// Keys lists every recognized setting.
var Keys = []string{
	KeyTemplate, KeyOutputDir, KeyExtension, KeyPlaceholder,
	KeyOverwrite, KeyLogLevel, KeyMinVersion,
}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	TemplatePath string
	OutputDir    string
	Extension    string
	Placeholder  string
	Overwrite    bool
	LogLevel     string
	MinVersion   string

	// ProjectFile is the profile path when one was found, else empty.
	ProjectFile string
}

// Options converts the settings into generator options.
func (s *Settings) Options() skeleton.Options {
	return skeleton.Options{
		TemplatePath: s.TemplatePath,
		OutputDir:    s.OutputDir,
		Extension:    s.Extension,
		Placeholder:  s.Placeholder,
		Overwrite:    s.Overwrite,
	}
}

// Dir returns the config directory. SKELGEN_HOME overrides ~/.skelgen.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	d := skeleton.DefaultOptions()
	v.SetDefault(KeyTemplate, d.TemplatePath)
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyExtension, d.Extension)
	v.SetDefault(KeyPlaceholder, d.Placeholder)
	v.SetDefault(KeyOverwrite, d.Overwrite)
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyMinVersion, "")
	return v
}

// Load resolves the settings for a run in workDir.
func Load(workDir string) (*Settings, error) {
	v := newViper()

	// Missing files are fine; anything else is reported.
	if err := validateUserFile(FilePath()); err != nil {
		return nil, err
	}
	v.SetConfigFile(FilePath())
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", FilePath(), err)
	}

	s := &Settings{}
	project := filepath.Join(workDir, ProjectFile)
	if _, err := os.Stat(project); err == nil {
		v.SetConfigFile(project)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", project, err)
		}
		s.ProjectFile = project
	}

	s.TemplatePath = v.GetString(KeyTemplate)
	s.OutputDir = v.GetString(KeyOutputDir)
	s.Extension = strings.TrimPrefix(v.GetString(KeyExtension), ".")
	s.Placeholder = v.GetString(KeyPlaceholder)
	s.Overwrite = v.GetBool(KeyOverwrite)
	s.LogLevel = v.GetString(KeyLogLevel)
	s.MinVersion = v.GetString(KeyMinVersion)

	if s.Placeholder == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyPlaceholder)
	}
	if s.TemplatePath == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyTemplate)
	}
	if s.OutputDir == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyOutputDir)
	}
	return s, nil
}

// Get returns a user-level value by key, with defaults and environment
// applied.
func Get(key string) (string, error) {
	if !isKnown(key) {
		return "", fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	v := newViper()
	v.SetConfigFile(FilePath())
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return "", fmt.Errorf("reading %s: %w", FilePath(), err)
	}
	return v.GetString(key), nil
}

// Set writes a key-value pair to the user config file.
func Set(key, value string) error {
	if !isKnown(key) {
		return fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	// Only what is in the file is written back, not defaults or env.
	v := viper.New()
	v.SetConfigType(fileType)
	configFile := FilePath()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return fmt.Errorf("reading %s: %w", configFile, err)
	}

	if key == KeyOverwrite {
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		v.Set(key, b)
	} else {
		v.Set(key, value)
	}

	// The user file shares its keys and value rules with the project profile.
	if err := validateSettings(v.AllSettings()); err != nil {
		return fmt.Errorf("invalid value %q: %w", value, err)
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func validateUserFile(path string) error {
	result, err := profile.ValidateFile(afero.NewOsFs(), path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid config %s: %s", path, result.Summary())
	}
	return nil
}

func validateSettings(settings map[string]any) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	result, err := profile.Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return errors.New(result.Summary())
	}
	return nil
}

func isKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%s must be true or false, got %q", KeyOverwrite, s)
}
