package interp

import "github.com/rockstar-lang/rockstar/internal/lexer"

// execLine dispatches a single non-blank line to its statement handler
// based on its leading token, the same per-line dispatch the original
// evaluator's main loop performs.
func (it *Interpreter) execLine(line []lexer.Token) (Value, signal) {
	switch line[0].Kind {
	case lexer.Let:
		return it.assignLet(line)
	case lexer.Put:
		return it.assignPut(line)
	case lexer.Shout:
		return it.shoutStatement(line)
	case lexer.Build:
		return it.buildStatement(line)
	case lexer.Knock:
		return it.knockStatement(line)
	case lexer.Rock:
		return it.rockStatement(line)
	case lexer.Roll:
		return it.rollStatement(line)
	case lexer.Turn:
		return it.turnStatement(line)
	case lexer.If:
		return it.ifStatement(line)
	case lexer.While:
		return it.whileStatement(line)
	case lexer.Until:
		return it.untilStatement(line)
	case lexer.Give:
		return it.giveBack(line)
	case lexer.Variable, lexer.Pronoun:
		return it.execNamedStatement(line)
	case lexer.Else:
		it.runtimeError(newSyntaxErrorf(line[0].Line, `"else" without a matching "if"`))
	default:
		it.runtimeError(newSyntaxErrorf(line[0].Line, "unrecognized statement starting with %s", line[0].Kind))
	}
	return Null{}, signalNext
}

// execNamedStatement handles the statement shapes that start with a
// variable or pronoun rather than a keyword: function declarations
// ("X takes ..."), poetic literal assignment ("X is 5", "X says hi"),
// and a bare function call used for its side effects.
func (it *Interpreter) execNamedStatement(line []lexer.Token) (Value, signal) {
	if len(line) < 2 {
		it.runtimeError(newSyntaxErrorf(line[0].Line, "incomplete statement"))
	}
	switch line[1].Kind {
	case lexer.Takes:
		return it.declareFunction(line)
	case lexer.Is:
		return it.assignIs(line)
	case lexer.Says:
		return it.assignSays(line)
	case lexer.Taking:
		it.evalCall(line[0].Text, line, 1)
		return Null{}, signalNext
	default:
		it.runtimeError(newSyntaxErrorf(line[0].Line, "unrecognized statement"))
	}
	return Null{}, signalNext
}

// targetName resolves the name a statement should write to or read from:
// a pronoun's current referent, or a variable's own name.
func (it *Interpreter) targetName(tok lexer.Token) string {
	if tok.Kind == lexer.Pronoun {
		name, ok := it.env.ResolvePronoun()
		if !ok {
			it.runtimeError(newExpressionErrorf(tok.Line, "pronoun has no preceding variable to refer to"))
		}
		return name
	}
	return tok.Text
}

// assign writes val to name in the current frame and records it as the
// new pronoun referent.
func (it *Interpreter) assign(name string, val Value) {
	it.env.Set(name, val)
	it.env.SetPronoun(name)
}

// countKind counts how many tokens of kind k appear in tokens, ignoring
// any And/Comma separators between them.
func countKind(tokens []lexer.Token, k lexer.Kind) int {
	count := 0
	for _, t := range tokens {
		if t.Kind == k {
			count++
		}
	}
	return count
}
