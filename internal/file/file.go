// Package file is the load/save boundary of the editing core. It reads and
// writes whole files and classifies I/O failures into a small set of kinds
// that the UI can show verbatim.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Kind classifies an I/O failure.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindPermissionDenied
	KindAlreadyExists
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "file not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "file already exists"
	default:
		return "i/o error"
	}
}

// Error is a classified I/O failure.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func classify(path string, err error) error {
	if err == nil {
		return nil
	}
	kind := KindOther
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermissionDenied
	case errors.Is(err, fs.ErrExist):
		kind = KindAlreadyExists
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// ReadText reads the file as UTF-8 text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, err)
	}
	return string(data), nil
}

// WriteText writes content to path, creating or truncating it. Returns the
// number of bytes written.
func WriteText(path, content string) (int, error) {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return 0, classify(path, err)
	}
	return len(content), nil
}

// Rename moves the file at old to new and classifies any failure.
func Rename(oldPath, newPath string) error {
	return classify(oldPath, os.Rename(oldPath, newPath))
}
