// Package parser implements the GDScript grammar as recursive-descent
// parsing functions over a cursor.
//
// Every parsing function follows one contract: given a cursor, either
// succeed and return a new cursor positioned after the consumed text
// plus a value, or fail without consuming and return an error
// annotated with the failure position and a context label. A rule
// that tries several alternatives reports the failure that consumed
// the most input.
package parser

import (
	"fmt"

	"github.com/gdtools/gdsc/pkg/gdscript/cursor"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
)

// fail creates a ParseError anchored at the cursor.
func fail(c cursor.Cursor, msg string) *perrors.ParseError {
	return perrors.New(msg, c.Line(), c.Col(), c.Offset())
}

// failf is fail with formatting.
func failf(c cursor.Cursor, format string, args ...any) *perrors.ParseError {
	return fail(c, fmt.Sprintf(format, args...))
}

// in annotates err with a context label anchored where the rule
// started.
func in(err *perrors.ParseError, context string, start cursor.Cursor) *perrors.ParseError {
	return err.In(context, start.Line(), start.Col())
}

// best keeps whichever failure consumed more input.
func best(a, b *perrors.ParseError) *perrors.ParseError {
	return perrors.Furthest(a, b)
}

// token consumes the exact text s.
func token(c cursor.Cursor, s string) (cursor.Cursor, *perrors.ParseError) {
	if !c.HasPrefix(s) {
		return c, failf(c, "expected %q", s)
	}
	return c.Skip(len(s)), nil
}

// keyword consumes s only when it is a whole word: the following
// character must not continue an identifier, so "class" does not
// match the front of "class_name".
func keyword(c cursor.Cursor, s string) (cursor.Cursor, *perrors.ParseError) {
	if !c.HasPrefix(s) {
		return c, failf(c, "expected %q", s)
	}
	rest := c.Rest()
	if len(rest) > len(s) && isIdentChar(rest[len(s)]) {
		return c, failf(c, "expected %q", s)
	}
	return c.Skip(len(s)), nil
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// identifier consumes [A-Za-z_][A-Za-z0-9_]* and returns it as a view
// into the source.
func identifier(c cursor.Cursor) (cursor.Cursor, string, *perrors.ParseError) {
	rest := c.Rest()
	if len(rest) == 0 || !isIdentStart(rest[0]) {
		return c, "", fail(c, "expected identifier")
	}
	n := 1
	for n < len(rest) && isIdentChar(rest[n]) {
		n++
	}
	return c.Skip(n), rest[:n], nil
}
