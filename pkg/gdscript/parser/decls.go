package parser

import (
	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	"github.com/gdtools/gdsc/pkg/gdscript/cursor"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
)

// parseDecl parses one declaration line. Keyword boundaries keep the
// forms from shadowing each other ("class" never matches the front of
// "class_name").
func parseDecl(c cursor.Cursor, indent int) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	var furthest *perrors.ParseError

	if c2, d, err := parseVar(c); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, d, err := parseConst(c); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, d, err := parseExtends(c); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, d, err := parseClassName(c); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, d, err := parseEnum(c); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, d, err := parseSignal(c); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, d, err := parseFunction(c, indent); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	if c2, d, err := parseClass(c, indent); err == nil {
		return c2, d, nil
	} else {
		furthest = best(furthest, err)
	}
	return c, nil, furthest
}

// matchEq consumes '=' only when it is not the front of '=='.
func matchEq(c cursor.Cursor) (cursor.Cursor, bool) {
	if c.HasPrefix("=") && !c.HasPrefix("==") {
		return c.Skip(1), true
	}
	return c, false
}

// parseVar parses a variable declaration:
//
//	[onready|export] var name [: Type | :=] [= expr] [setget set[,get]]
func parseVar(c cursor.Cursor) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	d := &ast.VarDecl{}

	c1 := c
	if c2, err := keyword(c1, "onready"); err == nil {
		d.Modifier = "onready"
		c1 = c2.SkipWS()
	} else if c2, err := keyword(c1, "export"); err == nil {
		d.Modifier = "export"
		c1 = c2.SkipWS()
	}

	c2, err := keyword(c1, "var")
	if err != nil {
		return c, nil, err
	}
	c3, name, err := identifier(c2.SkipWS())
	if err != nil {
		return c, nil, in(err, "var_decl", start)
	}
	d.Name = name

	cw := c3.SkipWS()
	if c4, terr := token(cw, ":="); terr == nil {
		d.Inferred = true
		c5, value, verr := ParseExpr(c4.SkipWS())
		if verr != nil {
			return c, nil, in(verr, "var_decl", start)
		}
		d.Value = value
		c3 = c5
	} else if c4, terr := token(cw, ":"); terr == nil {
		c5, typ, terr := identifier(c4.SkipWS())
		if terr != nil {
			return c, nil, in(terr, "var_decl", start)
		}
		d.Type = typ
		cw = c5.SkipWS()
		if c6, ok := matchEq(cw); ok {
			c7, value, verr := ParseExpr(c6.SkipWS())
			if verr != nil {
				return c, nil, in(verr, "var_decl", start)
			}
			d.Value = value
			c3 = c7
		} else {
			c3 = c5
		}
	} else if c4, ok := matchEq(cw); ok {
		c5, value, verr := ParseExpr(c4.SkipWS())
		if verr != nil {
			return c, nil, in(verr, "var_decl", start)
		}
		d.Value = value
		c3 = c5
	}

	cw = c3.SkipWS()
	if c4, kerr := keyword(cw, "setget"); kerr == nil {
		d.HasSetget = true
		c4 = c4.SkipWS()
		if c5, setter, serr := identifier(c4); serr == nil {
			d.Setter = setter
			if c6, terr := token(c5.SkipWS(), ","); terr == nil {
				c7, getter, gerr := identifier(c6.SkipWS())
				if gerr != nil {
					return c, nil, in(gerr, "setget", cw)
				}
				d.Getter = getter
				c3 = c7
			} else {
				c3 = c5
			}
		} else if c5, terr := token(c4, ","); terr == nil {
			c6, getter, gerr := identifier(c5.SkipWS())
			if gerr != nil {
				return c, nil, in(gerr, "setget", cw)
			}
			d.Getter = getter
			c3 = c6
		} else {
			return c, nil, in(fail(c4, "expected setter or ',getter' after setget"), "setget", cw)
		}
	}

	c5, eerr := endOfLine(c3)
	if eerr != nil {
		return c, nil, in(eerr, "var_decl", start)
	}
	return c5, d, nil
}

// parseConst parses const name [: Type | :=] = expr. The initializer
// is mandatory.
func parseConst(c cursor.Cursor) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "const")
	if err != nil {
		return c, nil, err
	}
	c2, name, err := identifier(c1.SkipWS())
	if err != nil {
		return c, nil, in(err, "const_decl", start)
	}
	d := &ast.ConstDecl{Name: name}

	cw := c2.SkipWS()
	if c3, terr := token(cw, ":="); terr == nil {
		d.Inferred = true
		cw = c3.SkipWS()
	} else {
		if c3, terr := token(cw, ":"); terr == nil {
			c4, typ, ierr := identifier(c3.SkipWS())
			if ierr != nil {
				return c, nil, in(ierr, "const_decl", start)
			}
			d.Type = typ
			cw = c4.SkipWS()
		}
		c3, ok := matchEq(cw)
		if !ok {
			return c, nil, in(fail(cw, "expected '=' initializer"), "const_decl", start)
		}
		cw = c3.SkipWS()
	}
	c3, value, verr := ParseExpr(cw)
	if verr != nil {
		return c, nil, in(verr, "const_decl", start)
	}
	d.Value = value
	c4, eerr := endOfLine(c3)
	if eerr != nil {
		return c, nil, in(eerr, "const_decl", start)
	}
	return c4, d, nil
}

// parseExtends parses extends "path" or extends Identifier.
func parseExtends(c cursor.Cursor) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "extends")
	if err != nil {
		return c, nil, err
	}
	c1 = c1.SkipWS()
	d := &ast.ExtendsDecl{}
	if c2, s, serr := parseString(c1); serr == nil {
		d.Target = s.(*ast.StringLit).Raw
		d.Quoted = true
		c1 = c2
	} else {
		c2, name, ierr := identifier(c1)
		if ierr != nil {
			return c, nil, in(best(serr, ierr), "extends_decl", start)
		}
		d.Target = name
		c1 = c2
	}
	c2, eerr := endOfLine(c1)
	if eerr != nil {
		return c, nil, in(eerr, "extends_decl", start)
	}
	return c2, d, nil
}

// parseClassName parses class_name Identifier.
func parseClassName(c cursor.Cursor) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "class_name")
	if err != nil {
		return c, nil, err
	}
	c2, name, ierr := identifier(c1.SkipWS())
	if ierr != nil {
		return c, nil, in(ierr, "class_name_decl", start)
	}
	c3, eerr := endOfLine(c2)
	if eerr != nil {
		return c, nil, in(eerr, "class_name_decl", start)
	}
	return c3, &ast.ClassNameDecl{Name: name}, nil
}

// parseEnum parses enum Name { variant [= value], ... } with an
// optional trailing comma. Blank lines and comments may appear
// between variants.
func parseEnum(c cursor.Cursor) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "enum")
	if err != nil {
		return c, nil, err
	}
	c2, name, ierr := identifier(c1.SkipWS())
	if ierr != nil {
		return c, nil, in(ierr, "enum_decl", start)
	}
	c3, terr := token(c2.SkipWS(), "{")
	if terr != nil {
		return c, nil, in(terr, "enum_decl", start)
	}
	d := &ast.EnumDecl{Name: name}
	c3 = c3.SkipWSL()
	for {
		c4, vname, verr := identifier(c3)
		if verr != nil {
			break
		}
		variant := ast.EnumVariant{Name: vname}
		c4 = c4.SkipWSL()
		if c5, ok := matchEq(c4); ok {
			c6, value, xerr := ParseExpr(c5.SkipWSL())
			if xerr != nil {
				return c, nil, in(xerr, "enum_decl", start)
			}
			variant.Value = value
			c4 = c6.SkipWSL()
		}
		d.Variants = append(d.Variants, variant)
		c5, cerr := token(c4, ",")
		if cerr != nil {
			c3 = c4
			break
		}
		c3 = c5.SkipWSL()
	}
	c4, terr := token(c3, "}")
	if terr != nil {
		return c, nil, in(terr, "enum_decl", start)
	}
	c5, eerr := endOfLine(c4)
	if eerr != nil {
		return c, nil, in(eerr, "enum_decl", start)
	}
	return c5, d, nil
}

// parseSignal parses signal name with an optional parenthesized
// parameter-name list. Params is non-nil exactly when the parentheses
// were written.
func parseSignal(c cursor.Cursor) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "signal")
	if err != nil {
		return c, nil, err
	}
	c2, name, ierr := identifier(c1.SkipWS())
	if ierr != nil {
		return c, nil, in(ierr, "signal_decl", start)
	}
	d := &ast.SignalDecl{Name: name}
	if c3, terr := token(c2, "("); terr == nil {
		d.Params = []string{}
		c3 = c3.SkipWSL()
		for {
			c4, pname, perr := identifier(c3)
			if perr != nil {
				break
			}
			d.Params = append(d.Params, pname)
			c4 = c4.SkipWSL()
			c5, cerr := token(c4, ",")
			if cerr != nil {
				c3 = c4
				break
			}
			c3 = c5.SkipWSL()
		}
		c4, terr := token(c3, ")")
		if terr != nil {
			return c, nil, in(terr, "signal_decl", start)
		}
		c2 = c4
	}
	c3, eerr := endOfLine(c2)
	if eerr != nil {
		return c, nil, in(eerr, "signal_decl", start)
	}
	return c3, d, nil
}

var functionModifiers = []string{
	"remotesync", "mastersync", "puppetsync",
	"static", "remote", "master", "puppet",
}

// parseFunction parses a function declaration with an indented body:
//
//	[modifier] func name(args) [-> Type]: <block>
func parseFunction(c cursor.Cursor, indent int) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	d := &ast.FunctionDecl{}

	c1 := c
	for _, m := range functionModifiers {
		if c2, err := keyword(c1, m); err == nil {
			d.Modifier = m
			c1 = c2.SkipWS()
			break
		}
	}

	c2, err := keyword(c1, "func")
	if err != nil {
		return c, nil, err
	}
	c3, name, ierr := identifier(c2.SkipWS())
	if ierr != nil {
		return c, nil, in(ierr, "func_decl", start)
	}
	d.Name = name

	c4, params, perr := parseParams(c3)
	if perr != nil {
		return c, nil, in(perr, "func_decl", start)
	}
	d.Params = params

	cw := c4.SkipWS()
	if c5, terr := token(cw, "->"); terr == nil {
		c6, typ, rerr := identifier(c5.SkipWS())
		if rerr != nil {
			return c, nil, in(rerr, "func_decl", start)
		}
		d.ReturnType = typ
		cw = c6.SkipWS()
	}

	c5, terr := token(cw, ":")
	if terr != nil {
		return c, nil, in(terr, "func_decl", start)
	}
	c6, eerr := endOfLine(c5)
	if eerr != nil {
		return c, nil, in(eerr, "func_decl", start)
	}
	c7, body, berr := parseIndentedBlock(c6, indent)
	if berr != nil {
		return c, nil, in(berr, "func_decl", start)
	}
	d.Body = body
	return c7, d, nil
}

// parseParams parses a parenthesized argument list: each parameter is
// name [: Type] [= default].
func parseParams(c cursor.Cursor) (cursor.Cursor, []ast.Param, *perrors.ParseError) {
	c1, err := token(c, "(")
	if err != nil {
		return c, nil, err
	}
	c1 = c1.SkipWSL()
	var params []ast.Param
	for {
		c2, name, ierr := identifier(c1)
		if ierr != nil {
			break
		}
		p := ast.Param{Name: name}
		cw := c2.SkipWS()
		if c3, terr := token(cw, ":"); terr == nil {
			c4, typ, terr := identifier(c3.SkipWS())
			if terr != nil {
				return c, nil, in(terr, "params", c1)
			}
			p.Type = typ
			cw = c4.SkipWS()
		}
		if c3, ok := matchEq(cw); ok {
			c4, def, derr := ParseExpr(c3.SkipWS())
			if derr != nil {
				return c, nil, in(derr, "params", c1)
			}
			p.Default = def
			cw = c4.SkipWS()
		}
		params = append(params, p)
		c1 = cw.SkipWSL()
		c3, cerr := token(c1, ",")
		if cerr != nil {
			break
		}
		c1 = c3.SkipWSL()
	}
	c2, err := token(c1, ")")
	if err != nil {
		return c, nil, err
	}
	return c2, params, nil
}

// parseClass parses an inner class: class Name: <block>. The body is
// a full block of declarations and statements, recursively.
func parseClass(c cursor.Cursor, indent int) (cursor.Cursor, ast.Decl, *perrors.ParseError) {
	start := c
	c1, err := keyword(c, "class")
	if err != nil {
		return c, nil, err
	}
	c2, name, ierr := identifier(c1.SkipWS())
	if ierr != nil {
		return c, nil, in(ierr, "class_decl", start)
	}
	c3, terr := token(c2.SkipWS(), ":")
	if terr != nil {
		return c, nil, in(terr, "class_decl", start)
	}
	c4, eerr := endOfLine(c3)
	if eerr != nil {
		return c, nil, in(eerr, "class_decl", start)
	}
	c5, body, berr := parseIndentedBlock(c4, indent)
	if berr != nil {
		return c, nil, in(berr, "class_decl", start)
	}
	return c5, &ast.ClassDecl{Name: name, Body: body}, nil
}
