package parser

import (
	"testing"
)

func TestVarDecl(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var health\n", "[Var(health)]"},
		{"var health = 100\n", "[Var(health = 100)]"},
		{"var speed := 5.0\n", "[Var(speed := 5.0)]"},
		{"var speed: float\n", "[Var(speed: float)]"},
		{"var speed: float = 5.0\n", "[Var(speed: float = 5.0)]"},
		{"onready var sprite = get_node()\n", "[Var(onready sprite = get_node())]"},
		{"export var hp = 10\n", "[Var(export hp = 10)]"},
	}
	for _, tt := range tests {
		if got := fileString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestVarDeclSetget(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var hp = 10 setget set_hp\n", "[Var(hp = 10 setget set_hp)]"},
		{"var hp setget set_hp,get_hp\n", "[Var(hp setget set_hp,get_hp)]"},
		{"var hp setget set_hp, get_hp\n", "[Var(hp setget set_hp,get_hp)]"},
		{"var hp setget ,get_hp\n", "[Var(hp setget ,get_hp)]"},
	}
	for _, tt := range tests {
		if got := fileString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
	// setget with neither slot is rejected
	if _, err := ParseFile("var hp setget\n"); err == nil {
		t.Error("bare setget should fail")
	}
}

func TestConstDecl(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"const MAX = 10\n", "[Const(MAX = 10)]"},
		{"const MAX: int = 10\n", "[Const(MAX: int = 10)]"},
		{"const MAX := 10\n", "[Const(MAX := 10)]"},
	}
	for _, tt := range tests {
		if got := fileString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
	// the initializer is mandatory
	if _, err := ParseFile("const MAX\n"); err == nil {
		t.Error("const without initializer should fail")
	}
}

func TestExtendsDecl(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"extends Node2D\n", "Extends(Node2D)"},
		{"extends \"res://base.gd\"\n", `Extends("res://base.gd")`},
	}
	for _, tt := range tests {
		if got := fileString(t, tt.src); got != "["+tt.want+"]" {
			t.Errorf("%q = %s, want [%s]", tt.src, got, tt.want)
		}
	}
}

func TestClassNameDecl(t *testing.T) {
	got := fileString(t, "class_name Player\n")
	if got != "[ClassName(Player)]" {
		t.Errorf("got %s, want [ClassName(Player)]", got)
	}
}

func TestEnumDecl(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"enum State { IDLE, RUN }\n", "[Enum(State {IDLE, RUN})]"},
		{"enum Flags { A = 1, B = 2, }\n", "[Enum(Flags {A = 1, B = 2})]"},
		{"enum Dir {\n    UP,\n    DOWN, # south\n}\n", "[Enum(Dir {UP, DOWN})]"},
		{"enum Empty {}\n", "[Enum(Empty {})]"},
	}
	for _, tt := range tests {
		if got := fileString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestSignalDecl(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"signal died\n", "[Signal(died)]"},
		{"signal hit()\n", "[Signal(hit())]"},
		{"signal hit(damage, source)\n", "[Signal(hit(damage, source))]"},
	}
	for _, tt := range tests {
		if got := fileString(t, tt.src); got != tt.want {
			t.Errorf("%q = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestFunctionDecl(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"no args",
			"func reset():\n    pass\n",
			"[Function(reset(): [Pass])]",
		},
		{
			"typed args and default",
			"func move(delta: float, speed = 5):\n    pass\n",
			"[Function(move(delta: float, speed = 5): [Pass])]",
		},
		{
			"return type",
			"func area() -> float:\n    return w * h\n",
			"[Function(area() -> float: [Return(Mul(w, h))])]",
		},
		{
			"static modifier",
			"static func make():\n    pass\n",
			"[Function(static make(): [Pass])]",
		},
		{
			"remote modifier",
			"remote func sync_state():\n    pass\n",
			"[Function(remote sync_state(): [Pass])]",
		},
		{
			"remotesync wins over remote",
			"remotesync func fire():\n    pass\n",
			"[Function(remotesync fire(): [Pass])]",
		},
		{
			"multi statement body",
			"func step():\n    x += 1\n    if x > 9:\n        x = 0\n",
			"[Function(step(): [Assign(x += 1); If(Gt(x, 9): [Assign(x = 0)])])]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileString(t, tt.src); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFunctionWithoutBodyFails(t *testing.T) {
	if _, err := ParseFile("func f():\n"); err == nil {
		t.Fatal("function without an indented body should fail")
	}
}

func TestClassDecl(t *testing.T) {
	src := "class Inner:\n" +
		"    var x = 1\n" +
		"    func get_x():\n" +
		"        return x\n"
	got := fileString(t, src)
	want := "[Class(Inner: [Var(x = 1); Function(get_x(): [Return(x)])])]"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestClassVersusClassName(t *testing.T) {
	// "class_name X" must not parse as class "..." with leftover.
	got := fileString(t, "class_name Foo\n")
	if got != "[ClassName(Foo)]" {
		t.Errorf("got %s", got)
	}
}
