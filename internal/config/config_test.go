package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the user config at a fresh directory and returns a fresh
// working directory.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("SKELGEN_HOME", home)
	return home, t.TempDir()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestDirHonorsEnv(t *testing.T) {
	home, _ := isolate(t)
	if Dir() != home {
		t.Errorf("Dir() = %q, want %q", Dir(), home)
	}
	if FilePath() != filepath.Join(home, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}

func TestLoadDefaults(t *testing.T) {
	_, work := isolate(t)

	s, err := Load(work)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.TemplatePath != "./AstNodeTemplate.java" {
		t.Errorf("TemplatePath = %q", s.TemplatePath)
	}
	if s.OutputDir != "./ast" {
		t.Errorf("OutputDir = %q", s.OutputDir)
	}
	if s.Extension != "java" {
		t.Errorf("Extension = %q", s.Extension)
	}
	if s.Placeholder != "AstNodeTemplate" {
		t.Errorf("Placeholder = %q", s.Placeholder)
	}
	if !s.Overwrite {
		t.Error("Overwrite should default to true")
	}
	if s.LogLevel != "warning" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if s.MinVersion != "" {
		t.Errorf("MinVersion = %q, want empty", s.MinVersion)
	}
	if s.ProjectFile != "" {
		t.Errorf("ProjectFile = %q, want empty", s.ProjectFile)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, "config.yaml"), "output_dir: ./user-out\nextension: .kt\nlog_level: info\n")
	writeFile(t, filepath.Join(work, ProjectFile), "output_dir: ./project-out\noverwrite: false\n")
	t.Setenv("SKELGEN_LOG_LEVEL", "debug")

	s, err := Load(work)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.OutputDir != "./project-out" {
		t.Errorf("OutputDir = %q, project profile should win over user config", s.OutputDir)
	}
	if s.Extension != "kt" {
		t.Errorf("Extension = %q, want user value without dot", s.Extension)
	}
	if s.Overwrite {
		t.Error("Overwrite = true, want project value false")
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, environment should win", s.LogLevel)
	}
	if s.ProjectFile != filepath.Join(work, ProjectFile) {
		t.Errorf("ProjectFile = %q", s.ProjectFile)
	}

	opts := s.Options()
	if opts.OutputDir != "./project-out" || opts.Extension != "kt" || opts.Overwrite {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestLoadEmptyPlaceholder(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, ProjectFile), "placeholder: \"\"\n")

	_, err := Load(work)
	if err == nil || !strings.Contains(err.Error(), "placeholder") {
		t.Fatalf("expected placeholder error, got %v", err)
	}
}

func TestLoadMalformedProfile(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, ProjectFile), "output_dir: [unterminated\n")

	if _, err := Load(work); err == nil {
		t.Fatal("expected error for malformed profile")
	}
}

func TestSetAndGet(t *testing.T) {
	home, work := isolate(t)

	if err := Set(KeyOutputDir, "./nodes"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := Set(KeyOverwrite, "false"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got, err := Get(KeyOutputDir)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "./nodes" {
		t.Errorf("Get(output_dir) = %q, want %q", got, "./nodes")
	}

	// The first Set must not be lost by the second.
	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "output_dir: ./nodes") {
		t.Errorf("config file missing output_dir:\n%s", data)
	}

	s, err := Load(work)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Overwrite {
		t.Error("Overwrite = true after Set(overwrite, false)")
	}
	if s.OutputDir != "./nodes" {
		t.Errorf("OutputDir = %q", s.OutputDir)
	}
}

func TestGetDefault(t *testing.T) {
	isolate(t)

	got, err := Get(KeyPlaceholder)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "AstNodeTemplate" {
		t.Errorf("Get(placeholder) = %q", got)
	}
}

func TestSetRejects(t *testing.T) {
	isolate(t)

	if err := Set("colour", "blue"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := Set(KeyOverwrite, "sometimes"); err == nil {
		t.Error("expected error for non-boolean overwrite")
	}
	if _, err := Get("colour"); err == nil {
		t.Error("expected error for unknown key on Get")
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	home, work := isolate(t)
	if err := Set(KeyLogLevel, "info"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	tests := []struct {
		key, value, want string
	}{
		{KeyLogLevel, "chatty", "/log_level"},
		{KeyMinVersion, "banana", "/min_version"},
		{KeyPlaceholder, "", "/placeholder"},
		{KeyExtension, "j/ava", "/extension"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := Set(tt.key, tt.value)
			if err == nil {
				t.Fatalf("Set(%s, %q) succeeded, want error", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name %s", err, tt.want)
			}
		})
	}

	// Nothing invalid reached the file, so later runs still load.
	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	for _, bad := range []string{"chatty", "banana", "j/ava", "placeholder"} {
		if strings.Contains(string(data), bad) {
			t.Errorf("config file contains %q:\n%s", bad, data)
		}
	}
	if _, err := Load(work); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
}

func TestLoadInvalidUserConfig(t *testing.T) {
	home, work := isolate(t)
	path := filepath.Join(home, "config.yaml")
	writeFile(t, path, "log_level: chatty\n")

	_, err := Load(work)
	if err == nil {
		t.Fatal("expected error for invalid user config")
	}
	if !strings.Contains(err.Error(), "invalid config "+path+": /log_level") {
		t.Errorf("error = %q", err)
	}
}
