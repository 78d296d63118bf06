package interp

import (
	"strconv"

	"github.com/rockstar-lang/rockstar/internal/lexer"
)

// exprOp identifies a binary or unary operator once it has been reduced
// out of the token stream's many equivalent spellings ("is greater than",
// "is as great as", "is higher than" all become opGt/opGe).
type exprOp int

const (
	opAdd exprOp = iota
	opSub
	opMul
	opDiv
	opAnd
	opOr
	opNot // unary, binds to the operand that follows it
	opEq
	opNeq
	opGt
	opLt
	opGe
	opLe
)

// exprItem is one slot in the flattened expression produced by
// evaluateExpression: either a resolved Value (a variable/pronoun/literal/
// function call already evaluated down to its result) or an operator
// waiting to be applied by calculate.
type exprItem struct {
	isValue bool
	val     Value
	op      exprOp
}

// evaluateExpression walks tokens left to right, resolving every operand
// (variable, pronoun, literal, or nested function call) to a concrete
// Value immediately, and leaving operators as exprOp markers. The result
// is handed to calculate for precedence-aware reduction. This split
// mirrors the original evaluator's two-stage evaluateExpression/calculate
// design: resolution of names happens once, up front, so calculate never
// needs access to the environment.
func (it *Interpreter) evaluateExpression(tokens []lexer.Token) []exprItem {
	var items []exprItem
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case lexer.Variable:
			if i+1 < len(tokens) && tokens[i+1].Kind == lexer.Taking {
				val, next := it.evalCall(tok.Text, tokens, i+1)
				items = append(items, exprItem{isValue: true, val: val})
				i = next
				continue
			}
			items = append(items, exprItem{isValue: true, val: it.readVariable(tok.Text)})
			i++

		case lexer.Pronoun:
			name, ok := it.env.ResolvePronoun()
			if !ok {
				it.runtimeError(newExpressionErrorf(tok.Line, "pronoun %q has no preceding variable to refer to", tok.Text))
			}
			items = append(items, exprItem{isValue: true, val: it.readVariable(name)})
			i++

		case lexer.Number:
			items = append(items, exprItem{isValue: true, val: Number{Value: parseNumber(tok.Text)}})
			i++

		case lexer.String:
			items = append(items, exprItem{isValue: true, val: String{Value: tok.Text}})
			i++

		case lexer.True:
			items = append(items, exprItem{isValue: true, val: Bool{Value: true}})
			i++
		case lexer.False:
			items = append(items, exprItem{isValue: true, val: Bool{Value: false}})
			i++
		case lexer.Null:
			items = append(items, exprItem{isValue: true, val: Null{}})
			i++
		case lexer.Mysterious:
			items = append(items, exprItem{isValue: true, val: Undefined{}})
			i++

		case lexer.At:
			val, next := it.evalIndexGet(tokens, i)
			// The preceding Variable/Pronoun token already pushed its own
			// (un-indexed) value; replace it with the indexed result.
			if len(items) > 0 {
				items = items[:len(items)-1]
			}
			items = append(items, exprItem{isValue: true, val: val})
			i = next

		case lexer.Roll:
			val, next := it.evalInlineRoll(tokens, i)
			items = append(items, exprItem{isValue: true, val: val})
			i = next

		case lexer.Plus:
			items = append(items, exprItem{op: opAdd})
			i++
		case lexer.Minus:
			items = append(items, exprItem{op: opSub})
			i++
		case lexer.Times:
			items = append(items, exprItem{op: opMul})
			i++
		case lexer.Over:
			items = append(items, exprItem{op: opDiv})
			i++
		case lexer.And:
			items = append(items, exprItem{op: opAnd})
			i++
		case lexer.Or:
			items = append(items, exprItem{op: opOr})
			i++
		case lexer.Not:
			items = append(items, exprItem{op: opNot})
			i++

		case lexer.Is, lexer.Isnt, lexer.Greater, lexer.Lower:
			op, consumed := checkOperator(tokens[i:])
			items = append(items, exprItem{op: op})
			i += consumed

		default:
			// Unrecognized token inside an expression window; skip it
			// rather than aborting the whole statement.
			i++
		}
	}
	return items
}

// evaluateExpressionWithContext is evaluateExpression with one addition:
// if tokens opens with a bare binary operator, ctxVar's current value is
// synthesized as the implicit first operand ("Let total be plus 3" reads
// as "total is total plus 3"), matching the original evaluator's
// evaluateExpression(variable) overload.
func (it *Interpreter) evaluateExpressionWithContext(tokens []lexer.Token, ctxVar string) []exprItem {
	if len(tokens) == 0 {
		return nil
	}
	switch tokens[0].Kind {
	case lexer.Plus, lexer.Minus, lexer.Times, lexer.Over:
		items := []exprItem{{isValue: true, val: it.readVariable(ctxVar)}}
		return append(items, it.evaluateExpression(tokens)...)
	default:
		return it.evaluateExpression(tokens)
	}
}

// readVariable resolves a variable by name and records it as the new
// pronoun referent. A variable that has never been assigned reads as
// Null (the default "null" value; confirmed against original_
// source/evaluator.cpp, where an unordered_map lookup of an unseen name
// default-constructs a Value holding its nullptr variant).
func (it *Interpreter) readVariable(name string) Value {
	it.env.SetPronoun(name)
	if v, ok := it.env.Get(name); ok {
		return v
	}
	return Null{}
}

// evalIndexGet implements the "At <index-expr>" expression form: it reads
// the array or string named by the Variable/Pronoun token immediately
// preceding tokens[atIdx] and returns the element at the index computed
// by evaluating the remainder of tokens as the subscript expression
// (mirroring the original evaluator's recursive evaluateExpression() call
// for the index). It consumes the rest of the window, so "at" must be the
// last clause of whatever expression it appears in.
func (it *Interpreter) evalIndexGet(tokens []lexer.Token, atIdx int) (Value, int) {
	if atIdx == 0 {
		it.runtimeError(newExpressionErrorf(tokens[atIdx].Line, `"at" has no preceding variable to index`))
	}
	name := it.targetName(tokens[atIdx-1])

	idxItems := it.evaluateExpression(tokens[atIdx+1:])
	idxVal := it.calculate(idxItems)
	idx, ok := indexValue(idxVal)
	if !ok {
		it.runtimeError(newTypeErrorf(tokens[atIdx].Line, "an array can only be indexed with numbers"))
	}

	cur, ok := it.env.Get(name)
	if !ok {
		it.runtimeError(newTypeErrorf(tokens[atIdx].Line, "%s is not an array or string", name))
	}
	switch v := cur.(type) {
	case Array:
		elem, ok := v.At(idx)
		if !ok {
			it.runtimeError(newBoundsErrorf(tokens[atIdx].Line, "index %d out of range for array of length %d", idx, len(v.Elements)))
		}
		return elem, len(tokens)
	case String:
		runes := []rune(v.Value)
		if idx < 0 || idx >= len(runes) {
			it.runtimeError(newBoundsErrorf(tokens[atIdx].Line, "index %d out of range for string of length %d", idx, len(runes)))
		}
		return String{Value: string(runes[idx])}, len(tokens)
	default:
		it.runtimeError(newTypeErrorf(tokens[atIdx].Line, "%s is not an array or string, can't index a %s", name, v.Type()))
		return Null{}, len(tokens)
	}
}

// evalInlineRoll implements "Roll <var>" used inline within an
// expression: pop the named array's front element and return it as the
// expression's value, the same queue-pop statementRoll performs.
func (it *Interpreter) evalInlineRoll(tokens []lexer.Token, i int) (Value, int) {
	if i+1 >= len(tokens) {
		it.runtimeError(newExpressionErrorf(tokens[i].Line, `"roll" requires a variable`))
	}
	name := it.targetName(tokens[i+1])
	cur, ok := it.env.Get(name)
	arr, isArr := cur.(Array)
	if !ok || !isArr {
		it.runtimeError(newTypeErrorf(tokens[i].Line, "%s is not an array", name))
	}
	popped := arr.Pop()
	it.env.Set(name, arr)
	return popped, i + 2
}

// evaluateList reduces the comma/and-separated argument or literal list
// in tokens into a slice of Values, running to the end of tokens. Each element may itself be a small expression.
func (it *Interpreter) evaluateList(tokens []lexer.Token) []Value {
	var values []Value
	var segment []lexer.Token
	flush := func() {
		if len(segment) > 0 {
			values = append(values, it.calculate(it.evaluateExpression(segment)))
			segment = nil
		}
	}
	for _, t := range tokens {
		if t.Kind == lexer.And || t.Kind == lexer.Comma {
			flush()
			continue
		}
		segment = append(segment, t)
	}
	flush()
	return values
}

// checkOperator inspects the comparison phrase starting at toks[0]
// (Is/Isnt/Greater/Lower) and returns the resolved Operator together with
// how many tokens it consumed, handling the "is greater than"/"is as
// great as" multi-word forms.
func checkOperator(toks []lexer.Token) (exprOp, int) {
	if len(toks) == 0 {
		return opEq, 0
	}
	switch toks[0].Kind {
	case lexer.Isnt:
		return opNeq, 1
	case lexer.Greater:
		if len(toks) > 1 && toks[1].Kind == lexer.Than {
			return opGt, 2
		}
		return opGt, 1
	case lexer.Lower:
		if len(toks) > 1 && toks[1].Kind == lexer.Than {
			return opLt, 2
		}
		return opLt, 1
	case lexer.Is:
		if len(toks) > 2 && toks[1].Kind == lexer.Greater && toks[2].Kind == lexer.Than {
			return opGt, 3
		}
		if len(toks) > 2 && toks[1].Kind == lexer.Lower && toks[2].Kind == lexer.Than {
			return opLt, 3
		}
		if len(toks) > 3 && toks[1].Kind == lexer.As && toks[2].Kind == lexer.Great && toks[3].Kind == lexer.As {
			return opGe, 4
		}
		if len(toks) > 3 && toks[1].Kind == lexer.As && toks[2].Kind == lexer.Little && toks[3].Kind == lexer.As {
			return opLe, 4
		}
		return opEq, 1
	default:
		return opEq, 1
	}
}

// parseNumber parses a Number token's text as a float64. The tokenizer
// only ever emits digit/sign/period runs here, so a parse failure means
// an internal inconsistency rather than bad user input; it degrades to
// zero rather than panicking the whole program.
func parseNumber(text string) float64 {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return f
}
