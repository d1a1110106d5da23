package ast

import (
	"strings"
	"testing"
)

func TestExprString(t *testing.T) {
	e := &BinaryExpr{
		Op:   Mul,
		Left: &Ident{Name: "a"},
		Right: &BinaryExpr{
			Op:    Add,
			Left:  &Ident{Name: "b"},
			Right: &Ident{Name: "c"},
		},
	}
	if got := e.String(); got != "Mul(a, Add(b, c))" {
		t.Errorf("String() = %q", got)
	}
}

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&NullLit{}, "null"},
		{&BoolLit{Value: true}, "true"},
		{&IntLit{Raw: "0xff", Value: 255}, "0xff"},
		{&FloatLit{Raw: "1.5", Value: 1.5}, "1.5"},
		{&StringLit{Raw: `a\nb`}, `"a\nb"`},
		{&NodePath{Path: "Player/Sprite"}, "$Player/Sprite"},
		{&UnaryExpr{Op: Not, Operand: &Ident{Name: "done"}}, "Not(done)"},
		{&Comment{Text: " note"}, "# note"},
	}
	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDumpNestsBlocks(t *testing.T) {
	block := Block{
		&FunctionDecl{
			Name:       "area",
			ReturnType: "float",
			Body: Block{
				&IfStmt{
					If: Condition{
						Cond: &Ident{Name: "ok"},
						Body: Block{&PassStmt{}},
					},
				},
				&ReturnStmt{Value: &Ident{Name: "w"}},
			},
		},
	}
	got := Dump(block)
	want := "Function area() -> float:\n" +
		"  If ok:\n" +
		"    Pass\n" +
		"  Return(w)\n"
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDumpMatch(t *testing.T) {
	block := Block{
		&MatchStmt{
			Subject: &Ident{Name: "state"},
			Cases: []Condition{
				{Cond: &IntLit{Raw: "1", Value: 1}, Body: Block{&PassStmt{}}},
				{Cond: &Ident{Name: "_"}, Body: Block{&PassStmt{}}},
			},
		},
	}
	got := Dump(block)
	if !strings.Contains(got, "Match state:\n") ||
		!strings.Contains(got, "  Case 1:\n") ||
		!strings.Contains(got, "  Case _:\n") {
		t.Errorf("Dump() = %q", got)
	}
}
