package parser

import (
	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	"github.com/gdtools/gdsc/pkg/gdscript/cursor"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
)

// parseStmt parses one statement line starting after its indentation.
// indent is the indentation of the enclosing block; nested blocks
// must exceed it.
func parseStmt(c cursor.Cursor, indent int) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	var furthest *perrors.ParseError

	if c2, s, err := parseIf(c, indent); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, s, err := parseWhile(c, indent); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, s, err := parseFor(c, indent); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, s, err := parseMatch(c, indent); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, s, err := parseReturn(c); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, s, err := parsePass(c); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, s, err := parseAssign(c); err == nil {
		return c2, s, nil
	} else {
		furthest = best(furthest, err)
	}
	return c, nil, furthest
}

// parseCondition parses "expr ':' <end of line> <indented block>".
// The block's indentation must strictly exceed indent and is fixed by
// its first line.
func parseCondition(c cursor.Cursor, indent int) (cursor.Cursor, ast.Condition, *perrors.ParseError) {
	start := c
	c1, cond, err := ParseExpr(c)
	if err != nil {
		return c, ast.Condition{}, in(err, "condition", start)
	}
	c2, err := token(c1.SkipWS(), ":")
	if err != nil {
		return c, ast.Condition{}, in(err, "condition", start)
	}
	c3, err := endOfLine(c2)
	if err != nil {
		return c, ast.Condition{}, in(err, "condition", start)
	}
	c4, body, berr := parseIndentedBlock(c3, indent)
	if berr != nil {
		return c, ast.Condition{}, in(berr, "condition", start)
	}
	return c4, ast.Condition{Cond: cond, Body: body}, nil
}

// parseIf parses the if condition, any elif arms at the same
// indentation, and an optional else block.
func parseIf(c cursor.Cursor, indent int) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "if")
	if err != nil {
		return c, nil, err
	}
	c2, cond, cerr := parseCondition(c1.SkipWS(), indent)
	if cerr != nil {
		return c, nil, in(cerr, "if_stmt", start)
	}
	stmt := &ast.IfStmt{If: cond}
	cur := c2

	for {
		lineStart, ok := nextLineAt(cur, indent)
		if !ok {
			break
		}
		afterIndent, _ := lineStart.SameIndent(indent)
		c3, kerr := keyword(afterIndent, "elif")
		if kerr != nil {
			break
		}
		c4, econd, eerr := parseCondition(c3.SkipWS(), indent)
		if eerr != nil {
			return c, nil, in(eerr, "elif", afterIndent).In("if_stmt", start.Line(), start.Col())
		}
		stmt.Elifs = append(stmt.Elifs, econd)
		cur = c4
	}

	if lineStart, ok := nextLineAt(cur, indent); ok {
		afterIndent, _ := lineStart.SameIndent(indent)
		if c3, kerr := keyword(afterIndent, "else"); kerr == nil {
			c4, terr := token(c3.SkipWS(), ":")
			if terr != nil {
				return c, nil, in(terr, "else", afterIndent).In("if_stmt", start.Line(), start.Col())
			}
			c5, eerr := endOfLine(c4)
			if eerr != nil {
				return c, nil, in(eerr, "else", afterIndent).In("if_stmt", start.Line(), start.Col())
			}
			c6, body, berr := parseIndentedBlock(c5, indent)
			if berr != nil {
				return c, nil, in(berr, "else", afterIndent).In("if_stmt", start.Line(), start.Col())
			}
			stmt.Else = body
			cur = c6
		}
	}
	return cur, stmt, nil
}

func parseWhile(c cursor.Cursor, indent int) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "while")
	if err != nil {
		return c, nil, err
	}
	c2, cond, cerr := parseCondition(c1.SkipWS(), indent)
	if cerr != nil {
		return c, nil, in(cerr, "while_stmt", start)
	}
	return c2, &ast.WhileStmt{Cond: cond}, nil
}

func parseFor(c cursor.Cursor, indent int) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "for")
	if err != nil {
		return c, nil, err
	}
	c2, cond, cerr := parseCondition(c1.SkipWS(), indent)
	if cerr != nil {
		return c, nil, in(cerr, "for_stmt", start)
	}
	return c2, &ast.ForStmt{Cond: cond}, nil
}

// parseMatch parses a scrutinee expression and a run of case
// conditions. The cases form their own indentation level, deeper than
// the match line and fixed by the first case; every case pattern is
// an arbitrary expression (the wildcard is the identifier _).
func parseMatch(c cursor.Cursor, indent int) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "match")
	if err != nil {
		return c, nil, err
	}
	c2, subject, serr := ParseExpr(c1.SkipWS())
	if serr != nil {
		return c, nil, in(serr, "match_stmt", start)
	}
	c3, terr := token(c2.SkipWS(), ":")
	if terr != nil {
		return c, nil, in(terr, "match_stmt", start)
	}
	c4, eerr := endOfLine(c3)
	if eerr != nil {
		return c, nil, in(eerr, "match_stmt", start)
	}

	first, ok := firstBlockLine(c4, indent)
	if !ok {
		return c, nil, in(fail(c4, "expected match cases indented past the match line"), "match_stmt", start)
	}
	caseIndent := first.Indentation()
	stmt := &ast.MatchStmt{Subject: subject}
	cur := c4
	for {
		lineStart, more := nextLineAt(cur, caseIndent)
		if !more {
			break
		}
		afterIndent, _ := lineStart.SameIndent(caseIndent)
		c5, cond, cerr := parseCondition(afterIndent, caseIndent)
		if cerr != nil {
			return c, nil, in(cerr, "match_case", afterIndent).In("match_stmt", start.Line(), start.Col())
		}
		stmt.Cases = append(stmt.Cases, cond)
		cur = c5
	}
	if len(stmt.Cases) == 0 {
		return c, nil, in(fail(c4, "expected at least one match case"), "match_stmt", start)
	}
	return cur, stmt, nil
}

// parseAssign parses target op expression, where target is an
// attribute-or-index expression headed by an identifier.
func parseAssign(c cursor.Cursor) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	start := c
	c1, head, err := parseCallOrIdent(c)
	if err != nil {
		return c, nil, err
	}
	c2, target, cerr := parseChain(c1, head)
	if cerr != nil {
		return c, nil, in(cerr, "assign", start)
	}
	c3, op, ok := matchAssignOp(c2.SkipWS())
	if !ok {
		return c, nil, fail(c2.SkipWS(), "expected assignment operator")
	}
	c4, value, verr := ParseExpr(c3.SkipWS())
	if verr != nil {
		return c, nil, in(verr, "assign", start)
	}
	c5, eerr := endOfLine(c4)
	if eerr != nil {
		return c, nil, in(eerr, "assign", start)
	}
	return c5, &ast.AssignStmt{Target: target, Op: op, Value: value}, nil
}

var assignOps = []struct {
	text string
	op   ast.AssignOp
}{
	{"+=", ast.AddAssign},
	{"-=", ast.SubAssign},
	{"*=", ast.MulAssign},
	{"/=", ast.DivAssign},
	{"%=", ast.ModAssign},
}

// matchAssignOp consumes one assignment operator. A bare '=' matches
// only when it is not the front of '=='.
func matchAssignOp(c cursor.Cursor) (cursor.Cursor, ast.AssignOp, bool) {
	for _, e := range assignOps {
		if c.HasPrefix(e.text) {
			return c.Skip(len(e.text)), e.op, true
		}
	}
	if c.HasPrefix("=") && !c.HasPrefix("==") {
		return c.Skip(1), ast.Assign, true
	}
	return c, 0, false
}

func parseReturn(c cursor.Cursor) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "return")
	if err != nil {
		return c, nil, err
	}
	c2, value, verr := ParseExpr(c1.SkipWS())
	if verr != nil {
		return c, nil, in(verr, "return_stmt", start)
	}
	c3, eerr := endOfLine(c2)
	if eerr != nil {
		return c, nil, in(eerr, "return_stmt", start)
	}
	return c3, &ast.ReturnStmt{Value: value}, nil
}

func parsePass(c cursor.Cursor) (cursor.Cursor, ast.Stmt, *perrors.ParseError) {
	c1, err := keyword(c, "pass")
	if err != nil {
		return c, nil, err
	}
	c2, eerr := endOfLine(c1)
	if eerr != nil {
		return c, nil, in(eerr, "pass_stmt", c)
	}
	return c2, &ast.PassStmt{}, nil
}
