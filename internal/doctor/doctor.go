// Package doctor checks that a working directory is ready for generation:
// the profile is valid, the template is a readable text file carrying the
// placeholder, and the output directory exists.
package doctor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/h2non/filetype"
	"github.com/jkirkwin/Custom-Compiler/internal/branding"
	"github.com/jkirkwin/Custom-Compiler/internal/config"
	"github.com/jkirkwin/Custom-Compiler/internal/profile"
	"github.com/jkirkwin/Custom-Compiler/internal/version"
	"github.com/spf13/afero"
)

// headerSize is how much of the template is sniffed for binary signatures.
const headerSize = 262

// Report tallies the outcome of Run.
type Report struct {
	Problems int // [MISS] and [FAIL] lines
	Warnings int
}

// OK reports whether no check failed.
func (r *Report) OK() bool { return r.Problems == 0 }

type reporter struct {
	w      io.Writer
	report Report
}

func (r *reporter) ok(format string, args ...any) {
	fmt.Fprintf(r.w, "  [ OK ] "+format+"\n", args...)
}

func (r *reporter) warn(format string, args ...any) {
	r.report.Warnings++
	fmt.Fprintf(r.w, "  [WARN] "+format+"\n", args...)
}

func (r *reporter) miss(format string, args ...any) {
	r.report.Problems++
	fmt.Fprintf(r.w, "  [MISS] "+format+"\n", args...)
}

func (r *reporter) fail(format string, args ...any) {
	r.report.Problems++
	fmt.Fprintf(r.w, "  [FAIL] "+format+"\n", args...)
}

func (r *reporter) hint(format string, args ...any) {
	fmt.Fprintf(r.w, "         "+format+"\n", args...)
}

// Run prints one line per check to w.
func Run(w io.Writer, fsys afero.Fs, s *config.Settings, buildVersion string) *Report {
	r := &reporter{w: w}
	fmt.Fprintf(w, "%s check:\n", branding.DisplayName())

	checkProfile(r, fsys, s)
	checkVersion(r, s, buildVersion)
	checkTemplate(r, fsys, s)
	checkOutputDir(r, fsys, s.OutputDir)

	return &r.report
}

func checkProfile(r *reporter, fsys afero.Fs, s *config.Settings) {
	if s.ProjectFile == "" {
		r.ok("no %s, using defaults", config.ProjectFile)
		return
	}
	result, err := profile.ValidateFile(fsys, s.ProjectFile)
	if err != nil {
		r.fail("%s: %v", s.ProjectFile, err)
		return
	}
	if !result.Valid {
		r.fail("%s is invalid", s.ProjectFile)
		for _, issue := range result.Issues {
			r.hint("%s", issue)
		}
		return
	}
	p, err := profile.Parse(fsys, s.ProjectFile)
	if err != nil {
		r.fail("%s: %v", s.ProjectFile, err)
		return
	}
	overrides := p.Overrides()
	if len(overrides) == 0 {
		r.ok("%s is valid, overrides nothing", s.ProjectFile)
		return
	}
	r.ok("%s is valid, overrides %s", s.ProjectFile, strings.Join(overrides, ", "))
}

func checkVersion(r *reporter, s *config.Settings, buildVersion string) {
	if s.MinVersion == "" {
		return
	}
	if err := version.Require(buildVersion, s.MinVersion); err != nil {
		r.fail("%v", err)
		return
	}
	if !version.IsRelease(buildVersion) {
		r.warn("development build %q, min_version %s not enforced", buildVersion, s.MinVersion)
		return
	}
	r.ok("version %s satisfies min_version %s", buildVersion, s.MinVersion)
}

func checkTemplate(r *reporter, fsys afero.Fs, s *config.Settings) {
	path := s.TemplatePath
	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.miss("template %s does not exist", path)
		r.hint("Run '%s init' to create it", branding.CLIName())
		return
	}
	if err != nil {
		r.fail("template %s: %v", path, err)
		return
	}
	if info.IsDir() {
		r.fail("template %s is a directory", path)
		return
	}

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		r.fail("template %s is not readable: %v", path, err)
		return
	}
	r.ok("template %s exists", path)

	head := content
	if len(head) > headerSize {
		head = head[:headerSize]
	}
	if kind, _ := filetype.Match(head); kind != filetype.Unknown {
		r.warn("template %s looks like a %s file, not source text", path, kind.MIME.Value)
	} else if bytes.IndexByte(head, 0) >= 0 {
		r.warn("template %s contains NUL bytes", path)
	}

	if n := strings.Count(string(content), s.Placeholder); n == 0 {
		r.warn("template %s never mentions placeholder %q", path, s.Placeholder)
	} else {
		r.ok("placeholder %q appears %d time(s)", s.Placeholder, n)
	}
}

func checkOutputDir(r *reporter, fsys afero.Fs, dir string) {
	info, err := fsys.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		r.miss("output directory %s does not exist", dir)
		r.hint("Create it with 'mkdir -p %s'", dir)
		return
	}
	if err != nil {
		r.fail("output directory %s: %v", dir, err)
		return
	}
	if !info.IsDir() {
		r.fail("output directory %s is not a directory", dir)
		return
	}
	r.ok("output directory %s exists", dir)
}
