package interp

import "github.com/rockstar-lang/rockstar/internal/lexer"

// Function is a Rockstar function declaration: a name, its parameter
// names in declared order, and the raw token body captured verbatim from
// "takes" through the blank line that terminates the declaration.
//
// The body is stored as tokens, not as a parsed AST — Rockstar functions
// are re-evaluated line-by-line on every call through a fresh
// Interpreter, exactly like the top-level program, rather than compiled
// once ahead of time (Non-goal: no bytecode/optimizer IR).
type Function struct {
	Name       string
	Parameters []string
	Body       []lexer.Token
}

// AddParameter appends a parameter name in declared order.
func (f *Function) AddParameter(name string) {
	f.Parameters = append(f.Parameters, name)
}

// AddToken appends a token to the captured body.
func (f *Function) AddToken(t lexer.Token) {
	f.Body = append(f.Body, t)
}
