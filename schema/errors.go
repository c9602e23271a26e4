package schema

import (
	"errors"
	"fmt"
)

// Sentinel causes carried inside the stage errors.
var (
	// ErrNoText means the source document opened fine but yielded no text layer.
	ErrNoText = errors.New("no extractable text")

	// ErrNoSections means the extracted text contained no recognizable app sections.
	ErrNoSections = errors.New("no app sections recognized")
)

// InputError reports a source document that is missing, unreadable, or has
// no text layer. It is fatal: nothing downstream of extraction runs.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ParseError reports extracted text in which no app sections were recognized.
// Individual malformed rows never raise it; only a fully unrecognizable
// document does.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OutputError reports a report that could not be written to its destination.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
