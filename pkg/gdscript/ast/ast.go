// Package ast defines the GDScript syntax tree.
//
// Every node that carries text (identifiers, string bodies, node-path
// text, numeric literal spellings) holds a view into the original
// source buffer: Go substrings share the backing array, so nothing is
// copied. Trees are built in a single pass and never mutated.
//
// Tagged unions are modeled as marker-method interfaces. BinaryExpr
// and UnaryExpr are the only recursive shapes; their children are
// held by pointer so the tree can be arbitrarily deep.
package ast

import (
	"strings"
)

// Node is any element of the tree.
type Node interface {
	// String renders a compact debug form, e.g. Mul(a, Add(b, c)).
	// It is a diagnostic rendering, not source text.
	String() string
}

// Expr is an expression: a value, a BinaryExpr, or a UnaryExpr.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement. Every statement is also a Line.
type Stmt interface {
	Node
	stmtNode()
	lineNode()
}

// Decl is a declaration. Every declaration is also a Line.
type Decl interface {
	Node
	declNode()
	lineNode()
}

// Line is the unit a Block is built from: a declaration, a statement,
// a bare expression, or a whole-line comment.
type Line interface {
	Node
	lineNode()
}

// Block is an ordered run of lines sharing one indentation level.
// Blank lines never appear in a Block.
type Block []Line

func (b Block) String() string {
	parts := make([]string, len(b))
	for i, l := range b {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

// Condition pairs a guard expression with the indented block it
// controls. Used by if, elif, while, for, and match cases.
type Condition struct {
	Cond Expr
	Body Block
}

func (c Condition) String() string {
	return c.Cond.String() + ": " + c.Body.String()
}

// BinOp enumerates binary operator kinds. Attr and Index are the
// postfix-chain shapes: a.b is Attr(a, b) and a[i] is Index(a, i).
type BinOp int

const (
	And BinOp = iota
	Or
	Eq
	Neq
	Gt
	Lt
	Gte
	Lte
	Is
	In
	As
	Add
	Sub
	Mul
	Div
	Mod
	BitOr
	BitAnd
	BitXor
	Attr
	Index
)

var binOpNames = [...]string{
	And: "And", Or: "Or", Eq: "Eq", Neq: "Neq", Gt: "Gt", Lt: "Lt",
	Gte: "Gte", Lte: "Lte", Is: "Is", In: "In", As: "As", Add: "Add",
	Sub: "Sub", Mul: "Mul", Div: "Div", Mod: "Mod", BitOr: "BitOr",
	BitAnd: "BitAnd", BitXor: "BitXor", Attr: "Attr", Index: "Index",
}

func (op BinOp) String() string { return binOpNames[op] }

// UnOp enumerates unary (prefix) operator kinds.
type UnOp int

const (
	Neg UnOp = iota
	Pos
	Not
)

var unOpNames = [...]string{Neg: "Neg", Pos: "Pos", Not: "Not"}

func (op UnOp) String() string { return unOpNames[op] }

// AssignOp enumerates assignment operator kinds.
type AssignOp int

const (
	Assign AssignOp = iota
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
)

var assignOpText = [...]string{
	Assign: "=", AddAssign: "+=", SubAssign: "-=",
	MulAssign: "*=", DivAssign: "/=", ModAssign: "%=",
}

func (op AssignOp) String() string { return assignOpText[op] }

// ---- Expressions ----

// BinaryExpr applies a binary operator to two sub-expressions.
type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) lineNode() {}
func (e *BinaryExpr) String() string {
	return e.Op.String() + "(" + e.Left.String() + ", " + e.Right.String() + ")"
}

// UnaryExpr applies a prefix operator to an operand.
type UnaryExpr struct {
	Op      UnOp
	Operand Expr
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) lineNode() {}
func (e *UnaryExpr) String() string {
	return e.Op.String() + "(" + e.Operand.String() + ")"
}

// NullLit is the literal null.
type NullLit struct{}

func (e *NullLit) exprNode()      {}
func (e *NullLit) lineNode()      {}
func (e *NullLit) String() string { return "null" }

// BoolLit is true or false.
type BoolLit struct {
	Value bool
}

func (e *BoolLit) exprNode() {}
func (e *BoolLit) lineNode() {}
func (e *BoolLit) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// IntLit is an integer literal. Raw keeps the original spelling
// (decimal or 0x-prefixed hex) as a view into the source.
type IntLit struct {
	Raw   string
	Value int64
}

func (e *IntLit) exprNode()      {}
func (e *IntLit) lineNode()      {}
func (e *IntLit) String() string { return e.Raw }

// FloatLit is a float literal: digits '.' digits, no exponent form.
type FloatLit struct {
	Raw   string
	Value float64
}

func (e *FloatLit) exprNode()      {}
func (e *FloatLit) lineNode()      {}
func (e *FloatLit) String() string { return e.Raw }

// StringLit is a quoted string. Raw is the body between the quotes
// with escapes left exactly as written: `\n` stays the two characters
// backslash and n.
type StringLit struct {
	Raw string
}

func (e *StringLit) exprNode()      {}
func (e *StringLit) lineNode()      {}
func (e *StringLit) String() string { return `"` + e.Raw + `"` }

// NodePath is a $-prefixed scene-tree reference: either a /-separated
// identifier path or a quoted string.
type NodePath struct {
	Path string
}

func (e *NodePath) exprNode()      {}
func (e *NodePath) lineNode()      {}
func (e *NodePath) String() string { return "$" + e.Path }

// ArrayLit is a [ ... ] literal.
type ArrayLit struct {
	Elems []Expr
}

func (e *ArrayLit) exprNode() {}
func (e *ArrayLit) lineNode() {}
func (e *ArrayLit) String() string {
	parts := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Pair is one key: value entry of an ObjectLit.
type Pair struct {
	Key   Expr
	Value Expr
}

// ObjectLit is a { key: value, ... } literal. Pairs keep source
// order.
type ObjectLit struct {
	Pairs []Pair
}

func (e *ObjectLit) exprNode() {}
func (e *ObjectLit) lineNode() {}
func (e *ObjectLit) String() string {
	parts := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Ident is a bare identifier.
type Ident struct {
	Name string
}

func (e *Ident) exprNode()      {}
func (e *Ident) lineNode()      {}
func (e *Ident) String() string { return e.Name }

// CallExpr is name(args...), with arguments in source order.
type CallExpr struct {
	Name string
	Args []Expr
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) lineNode() {}
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ---- Statements ----

// IfStmt is an if header, zero or more elif arms at the same
// indentation, and an optional else block.
type IfStmt struct {
	If    Condition
	Elifs []Condition
	Else  Block
}

func (s *IfStmt) stmtNode() {}
func (s *IfStmt) lineNode() {}
func (s *IfStmt) String() string {
	var sb strings.Builder
	sb.WriteString("If(")
	sb.WriteString(s.If.String())
	for _, e := range s.Elifs {
		sb.WriteString(", Elif(")
		sb.WriteString(e.String())
		sb.WriteString(")")
	}
	if s.Else != nil {
		sb.WriteString(", Else(")
		sb.WriteString(s.Else.String())
		sb.WriteString(")")
	}
	sb.WriteString(")")
	return sb.String()
}

// WhileStmt is while condition: block.
type WhileStmt struct {
	Cond Condition
}

func (s *WhileStmt) stmtNode()      {}
func (s *WhileStmt) lineNode()      {}
func (s *WhileStmt) String() string { return "While(" + s.Cond.String() + ")" }

// ForStmt is for x in seq: block. The iteration clause is an ordinary
// expression (an In chain).
type ForStmt struct {
	Cond Condition
}

func (s *ForStmt) stmtNode()      {}
func (s *ForStmt) lineNode()      {}
func (s *ForStmt) String() string { return "For(" + s.Cond.String() + ")" }

// MatchStmt is match subject: followed by one case condition per
// line, each pattern an arbitrary expression (the wildcard is the
// identifier _).
type MatchStmt struct {
	Subject Expr
	Cases   []Condition
}

func (s *MatchStmt) stmtNode() {}
func (s *MatchStmt) lineNode() {}
func (s *MatchStmt) String() string {
	var sb strings.Builder
	sb.WriteString("Match(")
	sb.WriteString(s.Subject.String())
	for _, c := range s.Cases {
		sb.WriteString(", Case(")
		sb.WriteString(c.String())
		sb.WriteString(")")
	}
	sb.WriteString(")")
	return sb.String()
}

// AssignStmt assigns to an attribute-or-index target.
type AssignStmt struct {
	Target Expr
	Op     AssignOp
	Value  Expr
}

func (s *AssignStmt) stmtNode() {}
func (s *AssignStmt) lineNode() {}
func (s *AssignStmt) String() string {
	return "Assign(" + s.Target.String() + " " + s.Op.String() + " " + s.Value.String() + ")"
}

// ReturnStmt is return expr.
type ReturnStmt struct {
	Value Expr
}

func (s *ReturnStmt) stmtNode()      {}
func (s *ReturnStmt) lineNode()      {}
func (s *ReturnStmt) String() string { return "Return(" + s.Value.String() + ")" }

// PassStmt is the bare pass keyword.
type PassStmt struct{}

func (s *PassStmt) stmtNode()      {}
func (s *PassStmt) lineNode()      {}
func (s *PassStmt) String() string { return "Pass" }

// ---- Declarations ----

// VarDecl is a variable declaration:
//
//	[onready|export] var name [: Type | :=] [= expr] [setget set[,get]]
//
// Inferred marks the := form. Setter and Getter are empty when the
// corresponding setget slot was omitted; HasSetget distinguishes a
// bare declaration from `setget` with both slots empty (which the
// grammar rejects anyway).
type VarDecl struct {
	Modifier  string
	Name      string
	Type      string
	Inferred  bool
	Value     Expr
	HasSetget bool
	Setter    string
	Getter    string
}

func (d *VarDecl) declNode() {}
func (d *VarDecl) lineNode() {}
func (d *VarDecl) String() string {
	var sb strings.Builder
	sb.WriteString("Var(")
	if d.Modifier != "" {
		sb.WriteString(d.Modifier)
		sb.WriteString(" ")
	}
	sb.WriteString(d.Name)
	if d.Type != "" {
		sb.WriteString(": ")
		sb.WriteString(d.Type)
	}
	if d.Value != nil {
		if d.Inferred {
			sb.WriteString(" := ")
		} else {
			sb.WriteString(" = ")
		}
		sb.WriteString(d.Value.String())
	}
	if d.HasSetget {
		sb.WriteString(" setget ")
		sb.WriteString(d.Setter)
		if d.Getter != "" {
			sb.WriteString(",")
			sb.WriteString(d.Getter)
		}
	}
	sb.WriteString(")")
	return sb.String()
}

// ConstDecl is const name [: Type | :=] = expr. The initializer is
// mandatory.
type ConstDecl struct {
	Name     string
	Type     string
	Inferred bool
	Value    Expr
}

func (d *ConstDecl) declNode() {}
func (d *ConstDecl) lineNode() {}
func (d *ConstDecl) String() string {
	var sb strings.Builder
	sb.WriteString("Const(")
	sb.WriteString(d.Name)
	if d.Type != "" {
		sb.WriteString(": ")
		sb.WriteString(d.Type)
	}
	if d.Inferred {
		sb.WriteString(" := ")
	} else {
		sb.WriteString(" = ")
	}
	sb.WriteString(d.Value.String())
	sb.WriteString(")")
	return sb.String()
}

// ExtendsDecl is extends "path" or extends Identifier.
type ExtendsDecl struct {
	Target string
	Quoted bool
}

func (d *ExtendsDecl) declNode() {}
func (d *ExtendsDecl) lineNode() {}
func (d *ExtendsDecl) String() string {
	if d.Quoted {
		return `Extends("` + d.Target + `")`
	}
	return "Extends(" + d.Target + ")"
}

// ClassNameDecl is class_name Identifier.
type ClassNameDecl struct {
	Name string
}

func (d *ClassNameDecl) declNode()      {}
func (d *ClassNameDecl) lineNode()      {}
func (d *ClassNameDecl) String() string { return "ClassName(" + d.Name + ")" }

// EnumVariant is one name or name = value entry of an enum.
type EnumVariant struct {
	Name  string
	Value Expr
}

func (v EnumVariant) String() string {
	if v.Value != nil {
		return v.Name + " = " + v.Value.String()
	}
	return v.Name
}

// EnumDecl is enum Name { variants }.
type EnumDecl struct {
	Name     string
	Variants []EnumVariant
}

func (d *EnumDecl) declNode() {}
func (d *EnumDecl) lineNode() {}
func (d *EnumDecl) String() string {
	parts := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		parts[i] = v.String()
	}
	return "Enum(" + d.Name + " {" + strings.Join(parts, ", ") + "})"
}

// SignalDecl is signal name or signal name(params).
type SignalDecl struct {
	Name   string
	Params []string
}

func (d *SignalDecl) declNode() {}
func (d *SignalDecl) lineNode() {}
func (d *SignalDecl) String() string {
	if d.Params == nil {
		return "Signal(" + d.Name + ")"
	}
	return "Signal(" + d.Name + "(" + strings.Join(d.Params, ", ") + "))"
}

// Param is one argument of a function declaration.
type Param struct {
	Name    string
	Type    string
	Default Expr
}

func (p Param) String() string {
	s := p.Name
	if p.Type != "" {
		s += ": " + p.Type
	}
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}

// FunctionDecl is a function declaration with an indented body.
type FunctionDecl struct {
	Modifier   string
	Name       string
	Params     []Param
	ReturnType string
	Body       Block
}

func (d *FunctionDecl) declNode() {}
func (d *FunctionDecl) lineNode() {}
func (d *FunctionDecl) String() string {
	var sb strings.Builder
	sb.WriteString("Function(")
	if d.Modifier != "" {
		sb.WriteString(d.Modifier)
		sb.WriteString(" ")
	}
	sb.WriteString(d.Name)
	sb.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	if d.ReturnType != "" {
		sb.WriteString(" -> ")
		sb.WriteString(d.ReturnType)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Body.String())
	sb.WriteString(")")
	return sb.String()
}

// ClassDecl is an inner class with an indented body of further
// declarations and statements.
type ClassDecl struct {
	Name string
	Body Block
}

func (d *ClassDecl) declNode() {}
func (d *ClassDecl) lineNode() {}
func (d *ClassDecl) String() string {
	return "Class(" + d.Name + ": " + d.Body.String() + ")"
}

// Comment is a whole-line # comment that sits at its block's own
// indentation. Text is everything after the '#', as a view.
type Comment struct {
	Text string
}

func (c *Comment) lineNode()      {}
func (c *Comment) String() string { return "#" + c.Text }
