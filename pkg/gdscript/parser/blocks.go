package parser

import (
	"strings"

	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	"github.com/gdtools/gdsc/pkg/gdscript/cursor"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
)

// ParseFile parses a whole script: a block at indentation zero that
// must consume the entire buffer. Trailing blank lines and comments
// are tolerated; any other leftover input is a hard parse error.
func ParseFile(src string) (ast.Block, *perrors.ParseError) {
	c := cursor.New(src)
	c2, block, err := parseBlockAt(c, 0)
	if err != nil {
		return nil, err
	}
	c2 = c2.SkipWSL()
	if !c2.EOF() {
		return nil, fail(c2, "unparsed input remains").In("file", c2.Line(), c2.Col())
	}
	return block, nil
}

// parseBlockAt parses a maximal run of lines at exactly indent. Blank
// lines and comment lines at other indentation levels are skipped
// between lines; the first line at a different indentation ends the
// block. A malformed line at the block's own indentation is a hard
// error.
func parseBlockAt(c cursor.Cursor, indent int) (cursor.Cursor, ast.Block, *perrors.ParseError) {
	cur := c
	var block ast.Block
	for {
		lineStart, ok := nextLineAt(cur, indent)
		if !ok {
			break
		}
		afterIndent, _ := lineStart.SameIndent(indent)
		c2, line, err := parseLine(afterIndent, indent)
		if err != nil {
			return c, nil, err
		}
		block = append(block, line)
		cur = c2
	}
	return cur, block, nil
}

// parseIndentedBlock parses a nested block whose indentation must
// strictly exceed parent. The block's level is fixed by its first
// line.
func parseIndentedBlock(c cursor.Cursor, parent int) (cursor.Cursor, ast.Block, *perrors.ParseError) {
	first, ok := firstBlockLine(c, parent)
	if !ok {
		return c, nil, in(fail(c.SkipWSLNoComment(), "expected an indented block"), "block", c)
	}
	c2, block, err := parseBlockAt(first, first.Indentation())
	if err != nil {
		return c, nil, in(err, "block", first)
	}
	return c2, block, nil
}

// firstBlockLine scans forward over blank lines and over-shallow
// comment lines to the first line that could open a block deeper than
// parent. It reports false when that line is not more indented.
func firstBlockLine(c cursor.Cursor, parent int) (cursor.Cursor, bool) {
	for {
		if c.EOF() {
			return c, false
		}
		w := c.Indentation()
		after := c.Skip(w)
		b, ok := after.Peek()
		if !ok {
			return c, false
		}
		switch {
		case b == '\n' || b == '\r':
			c = c.SkipLine()
		case b == '#' && w <= parent:
			c = c.SkipLine()
		default:
			return c, w > parent
		}
	}
}

// nextLineAt scans forward from a line boundary to the next line at
// exactly indent, skipping blank lines and comment lines at other
// indentation levels. It reports false at end of input or when the
// next substantive line sits at a different indentation.
func nextLineAt(c cursor.Cursor, indent int) (cursor.Cursor, bool) {
	for {
		if c.EOF() {
			return c, false
		}
		w := c.Indentation()
		after := c.Skip(w)
		b, ok := after.Peek()
		if !ok {
			return c, false
		}
		switch {
		case b == '\n' || b == '\r':
			c = c.SkipLine()
		case b == '#' && w != indent:
			c = c.SkipLine()
		case w == indent:
			return c, true
		default:
			return c, false
		}
	}
}

// parseLine classifies one line, trying declaration forms, then
// statement forms, then a bare expression, then a comment. This order
// resolves the ambiguity between a call-expression statement and a
// declaration keyword. c points just after the line's indentation.
func parseLine(c cursor.Cursor, indent int) (cursor.Cursor, ast.Line, *perrors.ParseError) {
	start := c
	var furthest *perrors.ParseError

	if c2, d, err := parseDecl(c, indent); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, s, err := parseStmt(c, indent); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, e, err := ParseExpr(c); err == nil {
		c3, eerr := endOfLine(c2)
		if eerr == nil {
			return c3, e.(ast.Line), nil
		}
		furthest = best(furthest, eerr)
	} else {
		furthest = best(furthest, err)
	}
	if c2, cm, err := parseComment(c); err == nil {
		return c2, cm, nil
	} else {
		furthest = best(furthest, err)
	}
	return c, nil, in(furthest, "line", start)
}

// parseComment parses a whole-line # comment, consuming through the
// newline. The text keeps everything after '#' as a view, minus a
// trailing carriage return.
func parseComment(c cursor.Cursor) (cursor.Cursor, *ast.Comment, *perrors.ParseError) {
	c1, err := token(c, "#")
	if err != nil {
		return c, nil, err
	}
	rest := c1.Rest()
	n := strings.IndexByte(rest, '\n')
	if n < 0 {
		n = len(rest)
	}
	text := strings.TrimSuffix(rest[:n], "\r")
	return c1.SkipLine(), &ast.Comment{Text: text}, nil
}

// endOfLine consumes optional trailing spaces and an optional
// trailing comment, then the newline (or end of input). Anything else
// left on the line is an error.
func endOfLine(c cursor.Cursor) (cursor.Cursor, *perrors.ParseError) {
	c = c.SkipWS()
	b, ok := c.Peek()
	if !ok {
		return c, nil
	}
	if b == '#' {
		return c.SkipLine(), nil
	}
	if b == '\r' {
		c = c.Skip(1)
		b, ok = c.Peek()
		if !ok {
			return c, nil
		}
	}
	if b != '\n' {
		return c, fail(c, "expected end of line")
	}
	return c.Skip(1), nil
}
