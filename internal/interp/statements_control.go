package interp

import "github.com/rockstar-lang/rockstar/internal/lexer"

// ifStatement implements "If COND" / "Else", whose body and optional
// else-clause both run to the blank line that closes the whole
// if/else group.
func (it *Interpreter) ifStatement(line []lexer.Token) (Value, signal) {
	cond := Truthy(it.calculate(it.evaluateExpression(line[1:])))

	start := it.lineIdx
	end := it.blockEnd(start)
	elseIdx := it.splitElse(start+1, end)

	bodyStart, bodyEnd := start+1, end
	elseStart, elseEnd := -1, -1
	if elseIdx != -1 {
		bodyEnd = elseIdx
		elseStart, elseEnd = elseIdx+1, end
	}

	var result Value = Null{}
	sig := signalNext
	switch {
	case cond:
		result, sig = it.runBlock(bodyStart, bodyEnd)
	case elseStart != -1:
		result, sig = it.runBlock(elseStart, elseEnd)
	}
	if sig == signalReturn {
		return result, signalReturn
	}

	it.lineIdx = end + 1
	return Null{}, signalJump
}

// runBlock executes lines[start:end), sharing the Interpreter's lineIdx
// cursor so nested If/While/Until statements can reposition it freely;
// the caller resets lineIdx to its own block's end once runBlock returns.
func (it *Interpreter) runBlock(start, end int) (Value, signal) {
	it.lineIdx = start
	for it.lineIdx < end {
		line := it.lines[it.lineIdx]
		if len(line) == 0 {
			it.lineIdx++
			continue
		}
		result, sig := it.execLine(line)
		if sig == signalReturn {
			return result, signalReturn
		}
		if sig == signalJump {
			continue
		}
		it.lineIdx++
	}
	return Null{}, signalNext
}
