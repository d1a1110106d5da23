// Package repl provides an interactive parse loop: type a snippet,
// see its tree or its diagnostic. Nothing is evaluated.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	"github.com/gdtools/gdsc/pkg/gdscript/parser"
)

const PROMPT = ">> "
const CONTINUATION_PROMPT = ".. "

// GDScript keywords for tab completion.
var completionWords = []string{
	"and", "as", "class", "class_name", "const", "elif", "else",
	"enum", "export", "extends", "false", "for", "func", "if", "in",
	"is", "master", "mastersync", "match", "not", "null", "onready",
	"or", "pass", "puppet", "puppetsync", "remote", "remotesync",
	"return", "setget", "signal", "static", "true", "var", "while",
}

// Start runs the parse loop with line editing, history, and tab
// completion until the user exits.
func Start(out io.Writer, version string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) []string {
		return filterCompletions(line)
	})

	historyFile := filepath.Join(os.TempDir(), ".gdsc_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(out, "gdsc parser v%s\n", version)
	fmt.Fprintln(out, "Type a GDScript snippet to see its tree.")
	fmt.Fprintln(out, "End an indented construct with a blank line.")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit.")
	fmt.Fprintln(out, "")

	var inputBuffer strings.Builder
	for {
		prompt := PROMPT
		if inputBuffer.Len() > 0 {
			prompt = CONTINUATION_PROMPT
		}
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				if inputBuffer.Len() > 0 {
					fmt.Fprintln(out, "^C (cleared)")
				} else {
					fmt.Fprintln(out, "^C")
				}
				inputBuffer.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if inputBuffer.Len() == 0 && (trimmed == "exit" || trimmed == "quit") {
			fmt.Fprintln(out, "Goodbye!")
			return
		}
		if inputBuffer.Len() == 0 && trimmed == "" {
			continue
		}

		if inputBuffer.Len() > 0 {
			inputBuffer.WriteString("\n")
		}
		inputBuffer.WriteString(input)

		fullInput := inputBuffer.String()
		if NeedsMoreInput(fullInput, input) {
			continue
		}

		if trimmed != "" {
			line.AppendHistory(fullInput)
		}
		inputBuffer.Reset()

		block, perr := parser.ParseFile(fullInput)
		if perr != nil {
			fmt.Fprintln(out, perr.Error())
			continue
		}
		fmt.Fprint(out, ast.Dump(block))
	}
}

// NeedsMoreInput reports whether the buffered snippet is visibly
// unfinished: unclosed brackets, a header line ending in ':', or an
// indented continuation that has not been closed with a blank line.
func NeedsMoreInput(buffered, lastLine string) bool {
	if bracketDepth(buffered) > 0 {
		return true
	}
	trimmed := strings.TrimRight(lastLine, " ")
	if strings.HasSuffix(trimmed, ":") {
		return true
	}
	// Inside an indented construct, only a blank line submits.
	if strings.Contains(buffered, "\n") && strings.TrimSpace(lastLine) != "" {
		return true
	}
	return false
}

// bracketDepth counts unclosed brackets outside of strings and
// comments.
func bracketDepth(s string) int {
	depth := 0
	var quote byte
	escaped := false
	inComment := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if inComment {
			if b == '\n' {
				inComment = false
			}
			continue
		}
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == quote:
				quote = 0
			}
			continue
		}
		switch b {
		case '"', '\'':
			quote = b
		case '#':
			inComment = true
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		}
	}
	return depth
}

func filterCompletions(line string) []string {
	fields := strings.Fields(line)
	prefix := ""
	if len(fields) > 0 && !strings.HasSuffix(line, " ") {
		prefix = fields[len(fields)-1]
	}
	var out []string
	for _, w := range completionWords {
		if strings.HasPrefix(w, prefix) {
			if prefix == "" {
				out = append(out, line+w)
			} else {
				out = append(out, line[:len(line)-len(prefix)]+w)
			}
		}
	}
	return out
}
