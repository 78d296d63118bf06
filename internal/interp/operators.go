package interp

// Operator identifies a comparison performed by an Is/Isnt/Greater/Lower
// expression once the tokenizer's many synonymous spellings ("is",
// "aint", "is as great as", "is higher than") have been folded down.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpGreaterThan
	OpLowerThan
	OpGreaterOrEqual
	OpLowerOrEqual
)

// valuesEqual implements Rockstar's "is" comparison. Same-type operands
// compare natively; cross-type operands coerce to whichever of Number or
// Bool is the "more specific" projection for that pair, per spec: a
// Number on either side always wins (the other side's as_number), and
// absent a Number a Bool wins (the other side's as_bool) — except
// string-vs-null/undefined, which is always unequal rather than
// coercing. Arrays compare length-first: two arrays of different
// lengths are never equal, even when one is a prefix of the other.
func valuesEqual(a, b Value) bool {
	if sameKind(a, b) {
		return valuesEqualSameType(a, b)
	}

	// Exactly one side undefined/null and the other a string: always
	// unequal, never coerced.
	if isNullish(a) && isString(b) || isString(a) && isNullish(b) {
		return false
	}

	if an, ok := a.(Number); ok {
		bf, ok := ToNumber(b)
		return ok && an.Value == bf
	}
	if bn, ok := b.(Number); ok {
		af, ok := ToNumber(a)
		return ok && af == bn.Value
	}
	return Truthy(a) == Truthy(b)
}

func sameKind(a, b Value) bool {
	switch a.(type) {
	case Undefined:
		_, ok := b.(Undefined)
		return ok
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Number:
		_, ok := b.(Number)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case Array:
		_, ok := b.(Array)
		return ok
	default:
		return false
	}
}

func isNullish(v Value) bool {
	switch v.(type) {
	case Undefined, Null:
		return true
	default:
		return false
	}
}

func isString(v Value) bool {
	_, ok := v.(String)
	return ok
}

func valuesEqualSameType(a, b Value) bool {
	switch av := a.(type) {
	case Undefined, Null:
		return true
	case Bool:
		return av.Value == b.(Bool).Value
	case Number:
		return av.Value == b.(Number).Value
	case String:
		return av.Value == b.(String).Value
	case Array:
		bv := b.(Array)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// compareNumeric implements Greater/Lower/GreaterOrEqual/LowerOrEqual.
// Ordering involving a Bool operand is a type error on either side (a
// Bool's ToNumber coercion exists for arithmetic, not for ordering).
// `>`, `<=`, and `>=` are all derived from `<` and `==`, per lessThan's
// handling of the mysterious ("<" is always false when either side is
// Undefined).
func compareNumeric(op Operator, a, b Value) (Bool, bool) {
	if _, ok := a.(Bool); ok {
		return Bool{}, false
	}
	if _, ok := b.(Bool); ok {
		return Bool{}, false
	}

	lt, ltOk := lessThan(a, b)
	gt, gtOk := lessThan(b, a)
	if !ltOk || !gtOk {
		return Bool{}, false
	}
	eq := valuesEqual(a, b)

	switch op {
	case OpGreaterThan:
		return Bool{Value: gt}, true
	case OpLowerThan:
		return Bool{Value: lt}, true
	case OpGreaterOrEqual:
		return Bool{Value: gt || eq}, true
	case OpLowerOrEqual:
		return Bool{Value: lt || eq}, true
	default:
		return Bool{}, false
	}
}

// lessThan implements "<": the mysterious value (Undefined) never
// compares less than anything, confirmed against spec's ordering rule
// that it is incomparable. Everything else coerces through ToNumber.
func lessThan(a, b Value) (bool, bool) {
	if _, ok := a.(Undefined); ok {
		return false, true
	}
	if _, ok := b.(Undefined); ok {
		return false, true
	}
	af, aok := ToNumber(a)
	bf, bok := ToNumber(b)
	if !aok || !bok {
		return false, false
	}
	return af < bf, true
}

// applyOperator evaluates any of the six comparison operators. Unlike the
// original C++ evaluator (whose NotEqual branch computed `a == b` with no
// negation, a confirmed source bug), Isnt here correctly negates Is.
func applyOperator(op Operator, a, b Value) (Value, bool) {
	switch op {
	case OpEqual:
		return Bool{Value: valuesEqual(a, b)}, true
	case OpNotEqual:
		return Bool{Value: !valuesEqual(a, b)}, true
	default:
		return compareNumeric(op, a, b)
	}
}
