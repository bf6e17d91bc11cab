package skeleton

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds. Match them with errors.Is.
var (
	ErrUsage            = errors.New("usage error")
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrPathInvalid      = errors.New("invalid path")
	ErrOutputExists     = errors.New("output file already exists")
	ErrTemplateExists   = errors.New("template already exists")
)

// Error describes a failed step of a generation.
type Error struct {
	Kind error  // one of the Err* kinds above
	Op   string // e.g. "open template", "create output"
	Path string
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + rootCause(e.Err).Error()
	}
	return msg
}

// Is matches the error's kind.
func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

// classify maps an I/O failure onto an error kind. notExist is the kind to
// use when the path is missing: a missing template is FileNotFound, while a
// missing output location is an invalid path.
func classify(op, path string, err error, notExist error) *Error {
	kind := ErrPathInvalid
	switch {
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermissionDenied
	case errors.Is(err, fs.ErrNotExist):
		kind = notExist
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// rootCause strips *fs.PathError so the path is not printed twice.
func rootCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func errorf(kind error, op, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}
