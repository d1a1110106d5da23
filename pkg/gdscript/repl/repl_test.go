package repl

import "testing"

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		name     string
		buffered string
		lastLine string
		want     bool
	}{
		{"complete expression", "1 + 2", "1 + 2", false},
		{"header line", "if x:", "if x:", true},
		{"header with trailing spaces", "func f():  ", "func f():  ", true},
		{"open bracket", "[1, 2,", "[1, 2,", true},
		{"open paren", "f(1,", "f(1,", true},
		{"open brace", "{\"a\": 1,", "{\"a\": 1,", true},
		{"closed bracket", "[1, 2]", "[1, 2]", false},
		{"body line keeps buffering", "if x:\n    pass", "    pass", true},
		{"blank line submits", "if x:\n    pass\n", "", false},
		{"bracket in string ignored", "\"[\"", "\"[\"", false},
		{"bracket in comment ignored", "# [", "# [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsMoreInput(tt.buffered, tt.lastLine); got != tt.want {
				t.Errorf("NeedsMoreInput(%q, %q) = %v, want %v", tt.buffered, tt.lastLine, got, tt.want)
			}
		})
	}
}

func TestBracketDepth(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"[1, 2]", 0},
		{"[[1], [2]", 1},
		{"f(g(", 2},
		{"')' + ']'", 0},
		{"\"a\\\"b\" + [", 1},    // escaped quote does not close the string
		{"x # ( comment\n)", -1}, // the ( is commented out, the ) is not
	}
	for _, tt := range tests {
		if got := bracketDepth(tt.src); got != tt.want {
			t.Errorf("bracketDepth(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestFilterCompletions(t *testing.T) {
	got := filterCompletions("ext")
	if len(got) != 1 || got[0] != "extends" {
		t.Errorf("completions = %v, want [extends]", got)
	}
}

func TestFilterCompletionsKeepsLinePrefix(t *testing.T) {
	got := filterCompletions("var x = fal")
	if len(got) != 1 || got[0] != "var x = false" {
		t.Errorf("completions = %v, want [var x = false]", got)
	}
}
