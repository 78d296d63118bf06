package interp

import "github.com/rockstar-lang/rockstar/internal/lexer"

// evalCall resolves a "Name taking arg, arg, ..." call embedded in an
// expression. The argument list runs to the end of the provided token
// window, matching Rockstar's convention that a function call is the
// last thing in its expression.
func (it *Interpreter) evalCall(name string, tokens []lexer.Token, takingIdx int) (Value, int) {
	args := it.evaluateList(tokens[takingIdx+1:])
	return it.callFunction(name, args), len(tokens)
}

// callFunction invokes a declared function with already-evaluated
// arguments, running its captured body in a fresh Interpreter whose
// environment encloses the caller's (read fallback, never write
// fallback).
func (it *Interpreter) callFunction(name string, args []Value) Value {
	fn, ok := it.functions[name]
	if !ok {
		it.runtimeError(newSyntaxErrorf(it.lineNo(), "%s is not a declared function", name))
	}
	if len(args) != len(fn.Parameters) {
		it.runtimeError(newArityErrorf(it.lineNo(), "%s takes %d argument(s), got %d", name, len(fn.Parameters), len(args)))
	}

	call := newCall(fn.Body, it.env, it.functions, name, it.out)
	for i, p := range fn.Parameters {
		call.env.Set(p, args[i])
	}
	return call.Eval()
}

// declareFunction captures "Name takes P1, P2, and P3" together with the
// raw token body that follows, up to the blank line that closes it. The
// body is stored as tokens, not parsed ahead of time: each call
// re-evaluates it line by line exactly like the top-level program.
func (it *Interpreter) declareFunction(line []lexer.Token) (Value, signal) {
	name := line[0].Text
	fn := &Function{Name: name}
	for _, p := range line[2:] {
		if p.Kind == lexer.Variable {
			fn.AddParameter(p.Text)
		}
	}

	end := it.blockEnd(it.lineIdx)
	for i := it.lineIdx + 1; i < end; i++ {
		for _, t := range it.lines[i] {
			fn.AddToken(t)
		}
		fn.AddToken(lexer.Token{Kind: lexer.NewLine, Line: t0Line(it.lines[i])})
	}

	it.functions[name] = fn
	it.lineIdx = end + 1
	return Null{}, signalJump
}

// t0Line returns the line number of a captured line's first token, or 0
// for a blank line (which carries no tokens of its own).
func t0Line(line []lexer.Token) int {
	if len(line) == 0 {
		return 0
	}
	return line[0].Line
}

// giveBack evaluates "Give [back] EXPR" and signals the enclosing Eval
// loop to stop and return that value, unwinding the current function
// call. "back" is optional, confirmed against original_source/
// evaluator.cpp's Give handler, which only skips it when present.
func (it *Interpreter) giveBack(line []lexer.Token) (Value, signal) {
	rest := line[1:]
	if len(rest) > 0 && rest[0].Kind == lexer.Back {
		rest = rest[1:]
	}
	val := it.calculate(it.evaluateExpression(rest))
	return val, signalReturn
}
