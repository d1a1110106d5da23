package parser

import (
	"strconv"

	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	"github.com/gdtools/gdsc/pkg/gdscript/cursor"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
)

// parseValue parses one value: a literal, a composite, an identifier,
// or a function call. Alternatives are ordered so that longer forms
// win: float before int (a float needs its fractional part), call
// before bare identifier.
func parseValue(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	start := c
	var furthest *perrors.ParseError

	if c2, v, err := parseNull(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseBool(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseFloat(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseInt(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseString(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseNodePath(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseArray(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseObject(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, v, err := parseCallOrIdent(c); err == nil {
		return c2, v, nil
	} else {
		furthest = best(furthest, err)
	}
	return c, nil, in(furthest, "value", start)
}

func parseNull(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	c2, err := keyword(c, "null")
	if err != nil {
		return c, nil, err
	}
	return c2, &ast.NullLit{}, nil
}

func parseBool(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	if c2, err := keyword(c, "true"); err == nil {
		return c2, &ast.BoolLit{Value: true}, nil
	}
	if c2, err := keyword(c, "false"); err == nil {
		return c2, &ast.BoolLit{Value: false}, nil
	}
	return c, nil, fail(c, "expected boolean")
}

// parseInt parses a 0x-prefixed hex or decimal integer. It consumes
// maximal digits and stops at the first non-digit, leaving it as
// leftover: "0foo" yields 0 with "foo" remaining.
func parseInt(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	rest := c.Rest()
	if len(rest) >= 3 && rest[0] == '0' && rest[1] == 'x' && isHexDigit(rest[2]) {
		n := 2
		for n < len(rest) && isHexDigit(rest[n]) {
			n++
		}
		v, err := strconv.ParseInt(rest[2:n], 16, 64)
		if err != nil {
			return c, nil, failf(c, "integer literal out of range: %s", rest[:n])
		}
		return c.Skip(n), &ast.IntLit{Raw: rest[:n], Value: v}, nil
	}
	if len(rest) == 0 || !isDigit(rest[0]) {
		return c, nil, fail(c, "expected integer")
	}
	n := 0
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	v, err := strconv.ParseInt(rest[:n], 10, 64)
	if err != nil {
		return c, nil, failf(c, "integer literal out of range: %s", rest[:n])
	}
	return c.Skip(n), &ast.IntLit{Raw: rest[:n], Value: v}, nil
}

// parseFloat parses digits '.' digits. There is no exponent form, so
// "1" alone is not a float and falls through to the integer rule.
func parseFloat(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	rest := c.Rest()
	n := 0
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	if n == 0 || n >= len(rest) || rest[n] != '.' {
		return c, nil, fail(c, "expected float")
	}
	m := n + 1
	for m < len(rest) && isDigit(rest[m]) {
		m++
	}
	if m == n+1 {
		return c, nil, fail(c, "expected digits after decimal point")
	}
	v, err := strconv.ParseFloat(rest[:m], 64)
	if err != nil {
		return c, nil, failf(c, "float literal out of range: %s", rest[:m])
	}
	return c.Skip(m), &ast.FloatLit{Raw: rest[:m], Value: v}, nil
}

// parseString parses a string delimited by matching single or double
// quotes. A backslash may escape only the delimiter, the backslash
// itself, and 'n'; the escape is kept structurally (the body view
// still contains both characters).
func parseString(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	rest := c.Rest()
	if len(rest) == 0 || (rest[0] != '"' && rest[0] != '\'') {
		return c, nil, fail(c, "expected string")
	}
	delim := rest[0]
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case delim:
			return c.Skip(i + 1), &ast.StringLit{Raw: rest[1:i]}, nil
		case '\\':
			if i+1 >= len(rest) {
				return c, nil, fail(c.Skip(i), "unterminated string")
			}
			esc := rest[i+1]
			if esc != delim && esc != '\\' && esc != 'n' {
				return c, nil, failf(c.Skip(i), "invalid escape \\%c", esc)
			}
			i += 2
		case '\n':
			return c, nil, fail(c.Skip(i), "unterminated string")
		default:
			i++
		}
	}
	return c, nil, fail(c.Skip(i), "unterminated string")
}

// parseNodePath parses $ followed by either a quoted string or a
// /-separated identifier path. The path text is kept as a view.
func parseNodePath(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	start := c
	c2, err := token(c, "$")
	if err != nil {
		return c, nil, err
	}
	if b, ok := c2.Peek(); ok && (b == '"' || b == '\'') {
		c3, s, serr := parseString(c2)
		if serr != nil {
			return c, nil, in(serr, "node_path", start)
		}
		return c3, &ast.NodePath{Path: s.(*ast.StringLit).Raw}, nil
	}
	segStart := c2
	c3, _, err := identifier(c2)
	if err != nil {
		return c, nil, in(err, "node_path", start)
	}
	for {
		c4, terr := token(c3, "/")
		if terr != nil {
			break
		}
		c5, _, ierr := identifier(c4)
		if ierr != nil {
			return c, nil, in(ierr, "node_path", start)
		}
		c3 = c5
	}
	return c3, &ast.NodePath{Path: cursor.Span(segStart, c3)}, nil
}

// parseArray parses [ expr, ... ] with optional trailing comma.
// Blank lines and comments may appear between elements.
func parseArray(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	start := c
	c2, elems, err := parseExprList(c, "[", "]")
	if err != nil {
		return c, nil, in(err, "array", start)
	}
	return c2, &ast.ArrayLit{Elems: elems}, nil
}

// parseExprList parses open, comma-separated expressions, close, with
// a tolerated trailing comma and comment-aware gaps. Shared by arrays
// and argument lists.
func parseExprList(c cursor.Cursor, open, close string) (cursor.Cursor, []ast.Expr, *perrors.ParseError) {
	c2, err := token(c, open)
	if err != nil {
		return c, nil, err
	}
	c2 = c2.SkipWSL()
	var elems []ast.Expr
	var furthest *perrors.ParseError
	for {
		c3, e, eerr := ParseExpr(c2)
		if eerr != nil {
			furthest = best(furthest, eerr)
			break
		}
		elems = append(elems, e)
		c2 = c3.SkipWSL()
		c4, cerr := token(c2, ",")
		if cerr != nil {
			break
		}
		c2 = c4.SkipWSL()
	}
	c5, err := token(c2, close)
	if err != nil {
		return c, nil, best(err, furthest)
	}
	return c5, elems, nil
}

// parseObject parses { value: expr, ... } with optional trailing
// comma. Keys are values, not full expressions.
func parseObject(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	start := c
	c2, err := token(c, "{")
	if err != nil {
		return c, nil, err
	}
	c2 = c2.SkipWSL()
	var pairs []ast.Pair
	var furthest *perrors.ParseError
	for {
		c3, key, kerr := parseValue(c2)
		if kerr != nil {
			furthest = best(furthest, kerr)
			break
		}
		c3 = c3.SkipWSL()
		c4, cerr := token(c3, ":")
		if cerr != nil {
			return c, nil, in(best(cerr, furthest), "object", start)
		}
		c5, val, verr := ParseExpr(c4.SkipWSL())
		if verr != nil {
			return c, nil, in(best(verr, furthest), "object", start)
		}
		pairs = append(pairs, ast.Pair{Key: key, Value: val})
		c2 = c5.SkipWSL()
		c6, cerr := token(c2, ",")
		if cerr != nil {
			break
		}
		c2 = c6.SkipWSL()
	}
	c7, err := token(c2, "}")
	if err != nil {
		return c, nil, in(best(err, furthest), "object", start)
	}
	return c7, &ast.ObjectLit{Pairs: pairs}, nil
}

// parseCallOrIdent parses an identifier, promoted to a function call
// when an argument list follows immediately.
func parseCallOrIdent(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	c2, name, err := identifier(c)
	if err != nil {
		return c, nil, err
	}
	if c2.HasPrefix("(") {
		c3, args, aerr := parseExprList(c2, "(", ")")
		if aerr != nil {
			return c, nil, in(aerr, "call", c)
		}
		return c3, &ast.CallExpr{Name: name, Args: args}, nil
	}
	return c2, &ast.Ident{Name: name}, nil
}
