package parser

import (
	"testing"

	"github.com/gdtools/gdsc/pkg/gdscript/cursor"
)

// exprString parses src as a full expression and returns the compact
// debug rendering, failing the test if anything is left over.
func exprString(t *testing.T, src string) string {
	t.Helper()
	c, e, err := ParseExpr(cursor.New(src))
	if err != nil {
		t.Fatalf("ParseExpr(%q): %v", src, err)
	}
	if rest := c.SkipWS(); !rest.EOF() {
		t.Fatalf("ParseExpr(%q) left %q unconsumed", src, rest.Rest())
	}
	return e.String()
}

func TestExprPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "Add(a, Mul(b, c))"},
		{"a * b + c", "Add(Mul(a, b), c)"},
		{"a * (b + c)", "Mul(a, Add(b, c))"},
		{"a + b + c", "Add(Add(a, b), c)"},
		{"a - b - c", "Sub(Sub(a, b), c)"},
		{"a / b % c", "Mod(Div(a, b), c)"},
		{"a < b and b < c", "And(Lt(a, b), Lt(b, c))"},
		{"a == b or c != d", "Or(Eq(a, b), Neq(c, d))"},
		{"a + b == c * d", "Eq(Add(a, b), Mul(c, d))"},
		{"a >= b", "Gte(a, b)"},
		{"a <= b", "Lte(a, b)"},
	}
	for _, tt := range tests {
		if got := exprString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExprSymbolicAndWordLogical(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a && b", "And(a, b)"},
		{"a || b", "Or(a, b)"},
		{"a and b", "And(a, b)"},
		{"a or b", "Or(a, b)"},
		// Bitwise & and | bind tighter than their doubled forms.
		{"a & b && c | d", "And(BitAnd(a, b), BitOr(c, d))"},
		{"a ^ b", "BitXor(a, b)"},
	}
	for _, tt := range tests {
		if got := exprString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExprTypeOperators(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a is Node", "Is(a, Node)"},
		{"x in list", "In(x, list)"},
		{"v as Vector2", "As(v, Vector2)"},
		// Word boundary: "index" is one identifier, not "in" + "dex".
		{"index", "index"},
		{"island", "island"},
	}
	for _, tt := range tests {
		if got := exprString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExprUnary(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"-x", "Neg(x)"},
		{"+x", "Pos(x)"},
		{"!done", "Not(done)"},
		{"- x", "Neg(x)"},
		{"-x + y", "Add(Neg(x), y)"},
		{"a * -b", "Mul(a, Neg(b))"},
		{"!f(1)", "Not(f(1))"},
	}
	for _, tt := range tests {
		if got := exprString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExprChains(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a.b", "Attr(a, b)"},
		{"a.b.c", "Attr(a, Attr(b, c))"},
		{"a.b()", "Attr(a, b())"},
		{"a.b.c()", "Attr(a, Attr(b, c()))"},
		{"get_node().show()", "Attr(get_node(), show())"},
		{"a[1]", "Index(a, 1)"},
		{"a.b[1]", "Attr(a, Index(b, 1))"},
		{"a.b[1].c", "Attr(a, Attr(Index(b, 1), c))"},
		{"a[1][2]", "Index(Index(a, 1), 2)"},
		{"f(x).y", "Attr(f(x), y)"},
		{"(a + b).length()", "Attr(Add(a, b), length())"},
		{"[1, 2][0]", "Index([1, 2], 0)"},
	}
	for _, tt := range tests {
		if got := exprString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExprChainInOperand(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a.b + c.d", "Add(Attr(a, b), Attr(c, d))"},
		{"items[i] * 2", "Mul(Index(items, i), 2)"},
		{"self.speed > max_speed", "Gt(Attr(self, speed), max_speed)"},
	}
	for _, tt := range tests {
		if got := exprString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExprUnconsumableOperatorLeftAlone(t *testing.T) {
	// A trailing operator whose right operand cannot parse is not
	// consumed; the expression ends before it.
	c, e, err := ParseExpr(cursor.New("a + "))
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	if got := e.String(); got != "a" {
		t.Errorf("parsed %s, want a", got)
	}
	if c.Rest() != " + " && c.Rest() != "+ " {
		t.Errorf("leftover = %q", c.Rest())
	}
}

func TestExprFailureHasExprContext(t *testing.T) {
	_, _, err := ParseExpr(cursor.New("???"))
	if err == nil {
		t.Fatal("expected failure")
	}
	found := false
	for _, label := range err.Trace() {
		if label == "expr" {
			found = true
		}
	}
	if !found {
		t.Errorf("trace %v missing expr", err.Trace())
	}
}

func TestExprParenErrors(t *testing.T) {
	for _, src := range []string{"(a + b", "()"} {
		if _, _, err := ParseExpr(cursor.New(src)); err == nil {
			t.Errorf("ParseExpr(%q) should fail", src)
		}
	}
}
