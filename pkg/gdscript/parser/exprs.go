package parser

import (
	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	"github.com/gdtools/gdsc/pkg/gdscript/cursor"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
)

// opEntry is one operator a precedence level may consume. Word
// operators match only on a word boundary, so "in" never eats the
// front of "index".
type opEntry struct {
	text string
	word bool
	op   ast.BinOp
}

// Each table is ordered longest first so ">=" wins over ">" and "&&"
// over "&".
var logicalOps = []opEntry{
	{"&&", false, ast.And},
	{"||", false, ast.Or},
	{"and", true, ast.And},
	{"or", true, ast.Or},
}

// Comparison and membership operators bind tighter than and/or, so
// "a < b and b < c" groups as And(Lt, Lt).
var relationalOps = []opEntry{
	{">=", false, ast.Gte},
	{"<=", false, ast.Lte},
	{"==", false, ast.Eq},
	{"!=", false, ast.Neq},
	{"is", true, ast.Is},
	{"in", true, ast.In},
	{"as", true, ast.As},
	{">", false, ast.Gt},
	{"<", false, ast.Lt},
}

var additiveOps = []opEntry{
	{"+", false, ast.Add},
	{"-", false, ast.Sub},
}

var multiplicativeOps = []opEntry{
	{"*", false, ast.Mul},
	{"/", false, ast.Div},
	{"%", false, ast.Mod},
	{"|", false, ast.BitOr},
	{"&", false, ast.BitAnd},
	{"^", false, ast.BitXor},
}

// ParseExpr parses an expression at the lowest-binding level. The
// precedence hierarchy, each level folding left-to-right:
//
//	logical < relational < additive < multiplicative/bitwise
//	  < unary < postfix index < atom
func ParseExpr(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	start := c
	c2, e, err := parseBinaryChain(c, parseRelational, logicalOps)
	if err != nil {
		return c, nil, in(err, "expr", start)
	}
	return c2, e, nil
}

func parseRelational(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	return parseBinaryChain(c, parseAdditive, relationalOps)
}

func parseAdditive(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	return parseBinaryChain(c, parseMultiplicative, additiveOps)
}

func parseMultiplicative(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	return parseBinaryChain(c, parseUnary, multiplicativeOps)
}

// parseBinaryChain parses next, then repeatedly consumes one of ops
// followed by another next, folding the results left-to-right. An
// operator whose right operand fails to parse is not consumed.
func parseBinaryChain(c cursor.Cursor, next func(cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError), ops []opEntry) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	c1, left, err := next(c)
	if err != nil {
		return c, nil, err
	}
	for {
		cw := c1.SkipWS()
		op, cAfter, ok := matchOp(cw, ops)
		if !ok {
			break
		}
		c2, right, rerr := next(cAfter.SkipWS())
		if rerr != nil {
			break
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
		c1 = c2
	}
	return c1, left, nil
}

func matchOp(c cursor.Cursor, ops []opEntry) (ast.BinOp, cursor.Cursor, bool) {
	for _, e := range ops {
		if e.word {
			if c2, err := keyword(c, e.text); err == nil {
				return e.op, c2, true
			}
		} else if c.HasPrefix(e.text) {
			return e.op, c.Skip(len(e.text)), true
		}
	}
	return 0, c, false
}

// parseUnary parses an optional single prefix operator (-, +, !)
// applied to a postfix expression.
func parseUnary(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	var op ast.UnOp
	matched := false
	if b, ok := c.Peek(); ok {
		switch b {
		case '-':
			op, matched = ast.Neg, true
		case '+':
			op, matched = ast.Pos, true
		case '!':
			op, matched = ast.Not, true
		}
	}
	if !matched {
		return parsePostfix(c)
	}
	start := c
	c2, operand, err := parsePostfix(c.Skip(1).SkipWS())
	if err != nil {
		return c, nil, in(err, "unary", start)
	}
	return c2, &ast.UnaryExpr{Op: op, Operand: operand}, nil
}

// parsePostfix parses an atom followed by zero or more [expr]
// subscripts, left-folded into Index nodes. Subscripts on identifier
// heads are already consumed by the attribute chain; this level picks
// up subscripts on everything else, e.g. [1, 2][0].
func parsePostfix(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	c1, e, err := parseAtom(c)
	if err != nil {
		return c, nil, err
	}
	for {
		c2, idx, ok := parseSubscript(c1)
		if !ok {
			break
		}
		e = &ast.BinaryExpr{Op: ast.Index, Left: e, Right: idx}
		c1 = c2
	}
	return c1, e, nil
}

// parseSubscript consumes [ expr ]. Not consuming on failure lets
// callers treat it as pure lookahead.
func parseSubscript(c cursor.Cursor) (cursor.Cursor, ast.Expr, bool) {
	cw := c.SkipWS()
	c2, err := token(cw, "[")
	if err != nil {
		return c, nil, false
	}
	c3, idx, ierr := ParseExpr(c2.SkipWSL())
	if ierr != nil {
		return c, nil, false
	}
	c4, cerr := token(c3.SkipWSL(), "]")
	if cerr != nil {
		return c, nil, false
	}
	return c4, idx, true
}

// parseAtom parses a parenthesized expression or a value. Atoms
// headed by an identifier, a call, or a parenthesized expression may
// continue with an attribute/call/index chain.
func parseAtom(c cursor.Cursor) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	start := c
	if c2, err := token(c, "("); err == nil {
		c3, inner, ierr := ParseExpr(c2.SkipWSL())
		if ierr != nil {
			// Anchor at the paren, not wherever the newline skip
			// ended up, so the diagnostic points at the open line.
			return c, nil, in(fail(c2, "expected expression after '('"), "paren_expr", start)
		}
		c4, cerr := token(c3.SkipWSL(), ")")
		if cerr != nil {
			return c, nil, in(cerr, "paren_expr", start)
		}
		return parseChain(c4, inner)
	}
	c2, v, err := parseValue(c)
	if err != nil {
		return c, nil, err
	}
	switch v.(type) {
	case *ast.Ident, *ast.CallExpr:
		return parseChain(c2, v)
	}
	return c2, v, nil
}

// parseChain parses zero or more postfix segments (.name, .name(args),
// [expr]) after head. A subscript binds to the segment immediately
// before it; attribute segments then fold right, so a.b[1].c becomes
// Attr(a, Attr(Index(b, 1), c)).
func parseChain(c cursor.Cursor, head ast.Expr) (cursor.Cursor, ast.Expr, *perrors.ParseError) {
	segs := []ast.Expr{head}
	for {
		if c2, err := token(c, "."); err == nil {
			c3, seg, serr := parseCallOrIdent(c2)
			if serr != nil {
				return c, nil, in(serr, "attr_chain", c)
			}
			segs = append(segs, seg)
			c = c3
			continue
		}
		if c2, idx, ok := parseSubscript(c); ok {
			segs[len(segs)-1] = &ast.BinaryExpr{Op: ast.Index, Left: segs[len(segs)-1], Right: idx}
			c = c2
			continue
		}
		break
	}
	e := segs[len(segs)-1]
	for i := len(segs) - 2; i >= 0; i-- {
		e = &ast.BinaryExpr{Op: ast.Attr, Left: segs[i], Right: e}
	}
	return c, e, nil
}
