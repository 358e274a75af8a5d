// Package apperr holds the error kinds surfaced by a search run.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrRead is returned when a note cannot be read as text.
	ErrRead = errors.New("read failed")
	// ErrPattern is returned when the search phrase cannot be compiled.
	ErrPattern = errors.New("invalid search pattern")
	// ErrEmptyTag is returned for a bare tag sigil when empty tags are rejected.
	ErrEmptyTag = errors.New("empty tag term")
	// ErrEnumerate is returned when the note corpus cannot be listed.
	ErrEnumerate = errors.New("enumerate notes")
)

// ReadError records which note could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError wraps err with the path of the note that failed.
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}
