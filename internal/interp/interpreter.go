package interp

import (
	"io"

	"github.com/rockstar-lang/rockstar/internal/interp/errors"
	"github.com/rockstar-lang/rockstar/internal/lexer"
)

// blockKind distinguishes the three statement shapes that open a
// blank-line-terminated block: If, While, and Until. The interpreter keeps
// no stack of these: blockEnd finds the blank line that closes the
// innermost open block by scanning forward and counting nested openers.
type blockKind int

const (
	blockIf blockKind = iota
	blockWhile
	blockUntil
)

// signal reports how a statement wants Eval's line loop to continue.
type signal int

const (
	signalNext   signal = iota // advance to the next line normally
	signalJump                 // lineIdx was already repositioned by the statement
	signalReturn                // stop the loop entirely and return a value
)

// Interpreter evaluates one program or function body: a flat sequence of
// lines, a variable environment, and the shared function table. Every
// function call spins up a fresh Interpreter over that function's
// captured body tokens, enclosing the caller's environment so reads can
// fall back to it (spec: parent-frame read-only fallback, never for
// writes).
type Interpreter struct {
	lines     [][]lexer.Token
	lineIdx   int
	env       *Environment
	functions map[string]*Function
	out       io.Writer

	// isInFunction names the function this Interpreter is executing (empty
	// at top level). It is not read anywhere: "Give back" ends whichever
	// Interpreter's line loop runs it.
	isInFunction string
}

// New creates a root-level Interpreter for a full program's token stream.
func New(tokens []lexer.Token, out io.Writer) *Interpreter {
	return &Interpreter{
		lines:     splitLines(tokens),
		env:       NewEnvironment(),
		functions: make(map[string]*Function),
		out:       out,
	}
}

// newCall creates an Interpreter for a function body, sharing the
// function table and enclosing env for read fallback.
func newCall(body []lexer.Token, outer *Environment, functions map[string]*Function, funcName string, out io.Writer) *Interpreter {
	return &Interpreter{
		lines:        splitLines(body),
		env:          NewEnclosedEnvironment(outer),
		functions:    functions,
		out:          out,
		isInFunction: funcName,
	}
}

// splitLines breaks a flat token stream into per-line slices at NewLine
// boundaries, dropping the NewLine tokens themselves and the trailing
// EndOfFile sentinel. A line with no tokens is a blank line, which is
// what closes If/While/Until blocks and function declarations.
func splitLines(tokens []lexer.Token) [][]lexer.Token {
	var lines [][]lexer.Token
	var current []lexer.Token
	for _, t := range tokens {
		switch t.Kind {
		case lexer.NewLine:
			lines = append(lines, current)
			current = nil
		case lexer.EndOfFile:
			if len(current) > 0 {
				lines = append(lines, current)
			}
		default:
			current = append(current, t)
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// Eval runs the line loop until it falls off the end of the program (or
// function body) or a "Give back" produces a return value.
func (it *Interpreter) Eval() Value {
	for it.lineIdx < len(it.lines) {
		line := it.lines[it.lineIdx]
		if len(line) == 0 {
			it.lineIdx++
			continue
		}

		result, sig := it.execLine(line)
		switch sig {
		case signalReturn:
			return result
		case signalJump:
			// lineIdx already repositioned by the statement.
		default:
			it.lineIdx++
		}
	}
	return Null{}
}

// lineNo returns the 1-based source line number of the interpreter's
// current line, used for error reporting.
func (it *Interpreter) lineNo() int {
	if it.lineIdx < len(it.lines) && len(it.lines[it.lineIdx]) > 0 {
		return it.lines[it.lineIdx][0].Line
	}
	return 0
}

func (it *Interpreter) runtimeError(err *errors.InterpreterError) Value {
	panic(err)
}

// isBlockOpener reports whether a line's first token starts an
// If/While/Until block.
func isBlockOpener(line []lexer.Token) bool {
	if len(line) == 0 {
		return false
	}
	switch line[0].Kind {
	case lexer.If, lexer.While, lexer.Until:
		return true
	default:
		return false
	}
}

// blockEnd finds the line index of the blank line that closes the block
// opened at `start` (whose first token is If/While/Until), accounting
// for nested blocks absorbing their own blank-line terminators before
// reaching this block's own.
func (it *Interpreter) blockEnd(start int) int {
	depth := 1
	i := start + 1
	for i < len(it.lines) {
		if isBlockOpener(it.lines[i]) {
			depth++
		} else if len(it.lines[i]) == 0 {
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return len(it.lines)
}

// splitElse scans an If block's body (the half-open range [start, end))
// for an Else line at the block's own nesting depth, returning its index
// or -1 if the block has no else clause.
func (it *Interpreter) splitElse(start, end int) int {
	depth := 0
	for i := start; i < end; i++ {
		line := it.lines[i]
		if isBlockOpener(line) {
			depth++
			continue
		}
		if len(line) == 0 {
			depth--
			continue
		}
		if depth == 0 && line[0].Kind == lexer.Else {
			return i
		}
	}
	return -1
}
