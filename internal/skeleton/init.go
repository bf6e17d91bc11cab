package skeleton

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// defaultTemplate is an empty AST node in the shape every node of the
// compiler's ast package has. It uses DefaultPlaceholder as its token.
//
//go:embed templates/AstNodeTemplate.java
var defaultTemplate []byte

// Init writes the built-in template to the configured template path, using
// the configured placeholder as its token. An existing template is never
// replaced.
func (g *Generator) Init() (*Result, error) {
	path := g.opts.TemplatePath
	if g.opts.Placeholder == "" {
		return nil, fmt.Errorf("init: %w", errEmptyPlaceholder)
	}

	f, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, outputPerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &Error{Kind: ErrTemplateExists, Op: "init", Path: path}
		}
		return nil, classify("create template", path, err, ErrPathInvalid)
	}
	defer f.Close()

	st, err := Substitute(bytes.NewReader(defaultTemplate), f, DefaultPlaceholder, g.opts.Placeholder)
	if err != nil {
		return nil, classify("write template", path, err, ErrPathInvalid)
	}
	if err := f.Close(); err != nil {
		return nil, classify("close template", path, err, ErrPathInvalid)
	}

	g.log.WithField("template", path).Debug("default template written")
	return &Result{Path: path, Lines: st.Lines, Replacements: st.Replacements}, nil
}
