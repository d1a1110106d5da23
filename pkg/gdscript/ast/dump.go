package ast

import (
	"fmt"
	"strings"
)

// Dump renders a block as an indented multi-line debug listing, one
// line per Line with nested blocks indented below their header. It is
// what the single-file CLI mode prints.
func Dump(b Block) string {
	var sb strings.Builder
	dumpBlock(&sb, b, 0)
	return sb.String()
}

func dumpBlock(sb *strings.Builder, b Block, depth int) {
	for _, line := range b {
		dumpLine(sb, line, depth)
	}
}

func dumpLine(sb *strings.Builder, line Line, depth int) {
	pad := strings.Repeat("  ", depth)
	switch n := line.(type) {
	case *IfStmt:
		fmt.Fprintf(sb, "%sIf %s:\n", pad, n.If.Cond)
		dumpBlock(sb, n.If.Body, depth+1)
		for _, e := range n.Elifs {
			fmt.Fprintf(sb, "%sElif %s:\n", pad, e.Cond)
			dumpBlock(sb, e.Body, depth+1)
		}
		if n.Else != nil {
			fmt.Fprintf(sb, "%sElse:\n", pad)
			dumpBlock(sb, n.Else, depth+1)
		}
	case *WhileStmt:
		fmt.Fprintf(sb, "%sWhile %s:\n", pad, n.Cond.Cond)
		dumpBlock(sb, n.Cond.Body, depth+1)
	case *ForStmt:
		fmt.Fprintf(sb, "%sFor %s:\n", pad, n.Cond.Cond)
		dumpBlock(sb, n.Cond.Body, depth+1)
	case *MatchStmt:
		fmt.Fprintf(sb, "%sMatch %s:\n", pad, n.Subject)
		for _, c := range n.Cases {
			fmt.Fprintf(sb, "%s  Case %s:\n", pad, c.Cond)
			dumpBlock(sb, c.Body, depth+2)
		}
	case *FunctionDecl:
		header := n.Name
		if n.Modifier != "" {
			header = n.Modifier + " " + n.Name
		}
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.String()
		}
		fmt.Fprintf(sb, "%sFunction %s(%s)", pad, header, strings.Join(params, ", "))
		if n.ReturnType != "" {
			fmt.Fprintf(sb, " -> %s", n.ReturnType)
		}
		sb.WriteString(":\n")
		dumpBlock(sb, n.Body, depth+1)
	case *ClassDecl:
		fmt.Fprintf(sb, "%sClass %s:\n", pad, n.Name)
		dumpBlock(sb, n.Body, depth+1)
	default:
		fmt.Fprintf(sb, "%s%s\n", pad, line)
	}
}
