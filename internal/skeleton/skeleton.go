package skeleton

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Defaults reproduce the layout of the compiler's source tree: the template
// sits in the working directory and nodes live in ./ast.
const (
	DefaultTemplatePath = "./AstNodeTemplate.java"
	DefaultOutputDir    = "./ast"
	DefaultExtension    = "java"
	DefaultPlaceholder  = "AstNodeTemplate"
)

const outputPerm = 0644

// Options configures a Generator.
type Options struct {
	TemplatePath string
	OutputDir    string
	Extension    string // with or without the leading dot; empty means none
	Placeholder  string
	Overwrite    bool // replace an existing output file without asking
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TemplatePath: DefaultTemplatePath,
		OutputDir:    DefaultOutputDir,
		Extension:    DefaultExtension,
		Placeholder:  DefaultPlaceholder,
		Overwrite:    true,
	}
}

// Result holds the outcome of a generation.
type Result struct {
	Path         string
	Lines        int
	Replacements int
}

// Generator writes skeleton files for new class names.
type Generator struct {
	fs   afero.Fs
	opts Options
	log  *logrus.Logger
}

// New creates a Generator operating on fsys. A nil logger discards output.
func New(fsys afero.Fs, opts Options, log *logrus.Logger) *Generator {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Generator{fs: fsys, opts: opts, log: log}
}

// OutputPath returns where the skeleton for name is written.
func (g *Generator) OutputPath(name string) string {
	fileName := name
	if ext := strings.TrimPrefix(g.opts.Extension, "."); ext != "" {
		fileName += "." + ext
	}
	return filepath.Join(g.opts.OutputDir, fileName)
}

// Generate copies the template to OutputPath(name), replacing the
// placeholder with name. The output file is created or truncated; with
// Overwrite unset it must not already exist. If a write fails midway the
// partial file is left in place.
func (g *Generator) Generate(name string) (*Result, error) {
	if name == "" {
		return nil, errorf(ErrUsage, "generate", "", "class name must not be empty")
	}
	if g.opts.Placeholder == "" {
		return nil, fmt.Errorf("generate: %w", errEmptyPlaceholder)
	}

	tmplPath := g.opts.TemplatePath
	outPath := g.OutputPath(name)
	log := g.log.WithFields(logrus.Fields{
		"name":     name,
		"template": tmplPath,
		"output":   outPath,
	})

	in, err := g.fs.Open(tmplPath)
	if err != nil {
		return nil, classify("open template", tmplPath, err, ErrFileNotFound)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return nil, classify("stat template", tmplPath, err, ErrFileNotFound)
	}
	if info.IsDir() {
		return nil, errorf(ErrPathInvalid, "open template", tmplPath, "is a directory")
	}
	log.Debug("template opened")

	if err := g.checkOutputDir(filepath.Dir(outPath)); err != nil {
		return nil, err
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !g.opts.Overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	out, err := g.fs.OpenFile(outPath, flag, outputPerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &Error{Kind: ErrOutputExists, Op: "create output", Path: outPath}
		}
		return nil, classify("create output", outPath, err, ErrPathInvalid)
	}
	defer out.Close()

	st, err := Substitute(in, out, g.opts.Placeholder, name)
	if err != nil {
		return nil, classify("write output", outPath, err, ErrPathInvalid)
	}
	if err := out.Close(); err != nil {
		return nil, classify("close output", outPath, err, ErrPathInvalid)
	}

	log.WithFields(logrus.Fields{
		"lines":        st.Lines,
		"replacements": st.Replacements,
	}).Debug("skeleton written")

	return &Result{
		Path:         outPath,
		Lines:        st.Lines,
		Replacements: st.Replacements,
	}, nil
}

// checkOutputDir fails when dir is missing or not a directory. The generator
// never creates it.
func (g *Generator) checkOutputDir(dir string) error {
	info, err := g.fs.Stat(dir)
	if err != nil {
		return classify("stat output dir", dir, err, ErrPathInvalid)
	}
	if !info.IsDir() {
		return errorf(ErrPathInvalid, "stat output dir", dir, "not a directory")
	}
	return nil
}
