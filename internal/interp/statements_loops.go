package interp

import "github.com/rockstar-lang/rockstar/internal/lexer"

// whileStatement implements "While COND", re-checking COND before every
// iteration and stopping as soon as it is falsy.
func (it *Interpreter) whileStatement(line []lexer.Token) (Value, signal) {
	return it.loopStatement(line, false)
}

// untilStatement implements "Until COND", the inverted counterpart of
// While: it loops while COND is falsy.
func (it *Interpreter) untilStatement(line []lexer.Token) (Value, signal) {
	return it.loopStatement(line, true)
}

// loopStatement is the shared While/Until driver: it records the block's
// line range once, then re-evaluates the condition expression and
// re-runs the body until the (possibly negated) condition is falsy.
func (it *Interpreter) loopStatement(line []lexer.Token, negate bool) (Value, signal) {
	start := it.lineIdx
	end := it.blockEnd(start)

	for {
		cond := Truthy(it.calculate(it.evaluateExpression(line[1:])))
		if negate {
			cond = !cond
		}
		if !cond {
			break
		}

		result, sig := it.runBlock(start+1, end)
		if sig == signalReturn {
			return result, signalReturn
		}
	}

	it.lineIdx = end + 1
	return Null{}, signalJump
}
