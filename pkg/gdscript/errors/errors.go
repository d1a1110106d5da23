// Package errors defines the structured error types produced by the
// GDScript parser and its path-based driver.
//
// A ParseError carries the exact position of a failure plus the stack
// of grammar rules that were being attempted when it happened. When
// several alternatives of a rule all fail, the alternative that
// consumed the most input wins (the furthest-progress heuristic), so
// the reported error is the one closest to what the author meant.
package errors

import (
	"fmt"
	"strings"
)

// Frame records one grammar rule that was being attempted when a
// parse failed, anchored at the position the rule started.
type Frame struct {
	Context string
	Line    int
	Column  int
}

// ParseError is a grammar failure at an exact position. Offset is
// the number of bytes consumed before the failure and is only used
// to rank competing failures. Frames grow as the error travels up
// the grammar, innermost rule first.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Offset  int
	Frames  []Frame
}

// New creates a ParseError at the given position.
func New(message string, line, column, offset int) *ParseError {
	return &ParseError{Message: message, Line: line, Column: column, Offset: offset}
}

// In pushes a context frame onto the error and returns it, so grammar
// rules can annotate failures on the way up:
//
//	return c, nil, err.In("if_stmt", line, col)
func (e *ParseError) In(context string, line, column int) *ParseError {
	e.Frames = append(e.Frames, Frame{Context: context, Line: line, Column: column})
	return e
}

// Error renders the failure position, message, and the rule trace
// from the innermost rule outwards.
func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "line %d, column %d: %s", e.Line, e.Column, e.Message)
	for _, f := range e.Frames {
		fmt.Fprintf(&sb, "\n  while parsing %s (line %d, column %d)", f.Context, f.Line, f.Column)
	}
	return sb.String()
}

// Compact renders the failure on one line, with the rule trace
// inlined, for per-file status reports.
func (e *ParseError) Compact() string {
	s := fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	if len(e.Frames) > 0 {
		s += " (while parsing " + strings.Join(e.Trace(), " < ") + ")"
	}
	return s
}

// Trace returns the context labels from the innermost rule outwards.
func (e *ParseError) Trace() []string {
	labels := make([]string, len(e.Frames))
	for i, f := range e.Frames {
		labels[i] = f.Context
	}
	return labels
}

// Furthest returns whichever error consumed more input before
// failing. On a tie the first argument wins, so callers should pass
// the earlier alternative first. Either argument may be nil.
func Furthest(a, b *ParseError) *ParseError {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Offset > a.Offset {
		return b
	}
	return a
}

// Kind categorizes driver-level failures.
type Kind int

const (
	// KindMissingPath means the input path is neither a readable
	// file nor a directory.
	KindMissingPath Kind = iota
	// KindInternal means an internal invariant was violated.
	KindInternal
	// KindParse wraps a grammar failure in a named file.
	KindParse
)

// ScriptError is the error taxonomy of the path-based entry points.
// None of these are fatal: the caller decides whether to exit or
// continue.
type ScriptError struct {
	Kind    Kind
	Path    string
	Message string
	Parse   *ParseError
}

// MissingPath reports a path that is neither file nor directory.
func MissingPath(path string) *ScriptError {
	return &ScriptError{Kind: KindMissingPath, Path: path}
}

// Internal reports an internal invariant violation.
func Internal(message string) *ScriptError {
	return &ScriptError{Kind: KindInternal, Message: message}
}

// ParseFailed wraps a grammar failure in the named file.
func ParseFailed(path string, err *ParseError) *ScriptError {
	return &ScriptError{Kind: KindParse, Path: path, Parse: err}
}

func (e *ScriptError) Error() string {
	switch e.Kind {
	case KindMissingPath:
		return fmt.Sprintf("path %q is neither a file nor a directory", e.Path)
	case KindInternal:
		return fmt.Sprintf("internal error: %s", e.Message)
	case KindParse:
		return fmt.Sprintf("%s: %s", e.Path, e.Parse.Error())
	}
	return e.Message
}

// Unwrap exposes the underlying ParseError, if any, to errors.Is/As.
func (e *ScriptError) Unwrap() error {
	if e.Parse != nil {
		return e.Parse
	}
	return nil
}
