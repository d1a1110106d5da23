// Package cursor provides the read position every parsing function
// threads through the grammar: a view of the remaining source text
// plus the absolute line and column reached so far.
//
// Cursors are small values and are always passed and returned by
// value. A parsing function that fails simply never hands its caller
// a new cursor, so backtracking is free.
package cursor

import "strings"

// Cursor is a position in a source buffer. The zero value is not
// usable; construct with New.
type Cursor struct {
	src  string
	off  int
	line int
	col  int
}

// New returns a cursor at the start of src (line 1, column 1).
func New(src string) Cursor {
	return Cursor{src: src, line: 1, col: 1}
}

// Rest returns the unconsumed remainder of the buffer. The result is
// a view into the original string, not a copy.
func (c Cursor) Rest() string { return c.src[c.off:] }

// Offset returns the number of bytes consumed so far. Parse errors
// are ranked by this value: the failure that consumed the most input
// is the one reported.
func (c Cursor) Offset() int { return c.off }

// Line returns the 1-based line number.
func (c Cursor) Line() int { return c.line }

// Col returns the 1-based column number.
func (c Cursor) Col() int { return c.col }

// EOF reports whether the whole buffer has been consumed.
func (c Cursor) EOF() bool { return c.off >= len(c.src) }

// Peek returns the next byte without consuming it.
func (c Cursor) Peek() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.src[c.off], true
}

// HasPrefix reports whether the remaining input starts with s.
func (c Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.Rest(), s)
}

// Skip consumes n bytes, tracking line and column. Skipping past the
// end of the buffer stops at the end.
func (c Cursor) Skip(n int) Cursor {
	end := c.off + n
	if end > len(c.src) {
		end = len(c.src)
	}
	for i := c.off; i < end; i++ {
		if c.src[i] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
	c.off = end
	return c
}

// Span returns the text consumed between start and end as a view into
// the source buffer. Both cursors must come from the same buffer.
func Span(start, end Cursor) string {
	return start.src[start.off:end.off]
}

// SkipWS consumes spaces. Tabs are left alone on purpose: this
// grammar measures indentation in spaces only, and a tab anywhere is
// an ordinary (and usually unparseable) character.
func (c Cursor) SkipWS() Cursor {
	n := 0
	for c.off+n < len(c.src) && c.src[c.off+n] == ' ' {
		n++
	}
	return c.Skip(n)
}

// SkipWSL consumes spaces, carriage returns, newlines, and '#'
// comments. Used where a value may be followed by blank lines or
// comments before the next token: arrays, objects, argument lists.
func (c Cursor) SkipWSL() Cursor {
	for {
		b, ok := c.Peek()
		if !ok {
			return c
		}
		switch b {
		case ' ', '\r', '\n':
			c = c.Skip(1)
		case '#':
			c = c.skipToLineEnd()
		default:
			return c
		}
	}
}

// SkipWSLNoComment consumes spaces, carriage returns, and newlines,
// but stops at a '#' comment.
func (c Cursor) SkipWSLNoComment() Cursor {
	for {
		b, ok := c.Peek()
		if !ok || (b != ' ' && b != '\r' && b != '\n') {
			return c
		}
		c = c.Skip(1)
	}
}

// skipToLineEnd consumes up to, but not including, the next newline.
func (c Cursor) skipToLineEnd() Cursor {
	n := 0
	for c.off+n < len(c.src) && c.src[c.off+n] != '\n' {
		n++
	}
	return c.Skip(n)
}

// SkipLine consumes the rest of the current line including its
// newline, or to the end of the buffer on the last line.
func (c Cursor) SkipLine() Cursor {
	c = c.skipToLineEnd()
	if !c.EOF() {
		c = c.Skip(1)
	}
	return c
}

// Indentation measures the indentation width at the cursor without
// consuming it: the number of leading space characters.
func (c Cursor) Indentation() int {
	n := 0
	for c.off+n < len(c.src) && c.src[c.off+n] == ' ' {
		n++
	}
	return n
}

// SameIndent consumes exactly n spaces if the measured indentation
// width equals n.
func (c Cursor) SameIndent(n int) (Cursor, bool) {
	if c.Indentation() != n {
		return c, false
	}
	return c.Skip(n), true
}

// MoreIndent consumes the leading spaces if the measured indentation
// width is strictly greater than n, returning the new width.
func (c Cursor) MoreIndent(n int) (Cursor, int, bool) {
	w := c.Indentation()
	if w <= n {
		return c, 0, false
	}
	return c.Skip(w), w, true
}
