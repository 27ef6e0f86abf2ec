package detector

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// shellInterpreters are executables that run whatever is piped into them.
var shellInterpreters = map[string]bool{
	"sh":      true,
	"bash":    true,
	"zsh":     true,
	"dash":    true,
	"ksh":     true,
	"python":  true,
	"python3": true,
	"perl":    true,
	"ruby":    true,
	"node":    true,
}

func containsShellMeta(text string) bool {
	return strings.ContainsAny(text, "|`$")
}

// confirmShellExecution parses candidate text as bash and reports whether it
// contains a pipeline into an interpreter or a command substitution. Plain
// prose either fails to parse or parses to bare words, and reports false —
// this keeps stray pipes in ordinary text from being flagged.
func confirmShellExecution(text string) bool {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(text), "")
	if err != nil {
		return false
	}

	found := false
	syntax.Walk(file, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.BinaryCmd:
			if n.Op == syntax.Pipe && stmtCallsInterpreter(n.Y) {
				found = true
			}
		case *syntax.CmdSubst:
			found = true
		}
		return !found
	})
	return found
}

func stmtCallsInterpreter(stmt *syntax.Stmt) bool {
	if stmt == nil {
		return false
	}
	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Args) == 0 {
		return false
	}
	name := wordToString(call.Args[0])
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return shellInterpreters[name]
}

// wordToString flattens the literal parts of a shell word. Expansions and
// quoting are ignored; only the literal executable name matters here.
func wordToString(w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		if lit, ok := part.(*syntax.Lit); ok {
			sb.WriteString(lit.Value)
		}
	}
	return sb.String()
}
