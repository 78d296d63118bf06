// Package interp implements the Rockstar tree-walking evaluator: line
// grouping, pronoun and variable resolution, expression reduction, and
// statement execution.
package interp

import (
	"strconv"
	"strings"
)

// Value is anything a Rockstar expression can produce or a variable can
// hold. The six concrete types below are the whole of Rockstar's dynamic
// type system; there is no user-defined type and no numeric subtyping
// (ints and floats are both Number).
type Value interface {
	Type() string
	String() string
}

// Null is the empty/default value: an uninitialized variable reads as
// Null, printing "null".
type Null struct{}

func (Null) Type() string   { return "Null" }
func (Null) String() string { return "null" }

// Undefined is the explicit "mysterious" value, produced by the
// mysterious keyword. Distinct from Null even though both are empty:
// a variable nobody ever assigned is Null, one explicitly set
// mysterious is Undefined.
type Undefined struct{}

func (Undefined) Type() string   { return "Undefined" }
func (Undefined) String() string { return "mysterious" }

// Bool wraps Rockstar's true/false literals.
type Bool struct{ Value bool }

func (Bool) Type() string { return "Bool" }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Number is Rockstar's single numeric type, stored as float64. Display
// trims trailing zeros and a trailing decimal point (Non-goal: no
// bit-exact numeric formatting beyond that).
type Number struct{ Value float64 }

func (Number) Type() string { return "Number" }
func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// String is Rockstar's text type.
type String struct{ Value string }

func (String) Type() string   { return "String" }
func (s String) String() string { return s.Value }

// Array is Rockstar's only collection type. Despite "rock"/"roll" naming
// suggesting a stack, roll pops the FRONT element: Rockstar arrays are
// queues, confirmed against the original evaluator's
// `arr.erase(arr.begin())`.
type Array struct{ Elements []Value }

func (Array) Type() string { return "Array" }
func (a Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Push appends v to the array.
func (a *Array) Push(v Value) {
	a.Elements = append(a.Elements, v)
}

// Pop removes and returns the front element. Popping an empty array
// returns Undefined, matching original_source/value.cpp's Value::pop(),
// which returns Value(Special::Undefined) rather than exiting.
func (a *Array) Pop() Value {
	if len(a.Elements) == 0 {
		return Undefined{}
	}
	v := a.Elements[0]
	a.Elements = a.Elements[1:]
	return v
}

// At returns the element at index (0-based).
func (a Array) At(index int) (Value, bool) {
	if index < 0 || index >= len(a.Elements) {
		return nil, false
	}
	return a.Elements[index], true
}

// Set stores v at index, growing the array with Null padding if
// index is beyond the current length.
func (a *Array) Set(index int, v Value) {
	for index >= len(a.Elements) {
		a.Elements = append(a.Elements, Null{})
	}
	a.Elements[index] = v
}

// Truthy implements Rockstar's boolean coercion: the empty string, zero,
// null, and mysterious are all falsy; everything else (including a
// non-empty array) is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Bool:
		return val.Value
	case Number:
		return val.Value != 0
	case String:
		return val.Value != ""
	case Null, Undefined:
		return false
	case Array:
		return len(val.Elements) > 0
	default:
		return false
	}
}

// ToNumber coerces v for arithmetic, matching the original evaluator's
// Value::asDouble: a string never parses to its numeric content, it
// always coerces to zero (confirmed against original_source/value.cpp,
// which returns 0.0 for isString() regardless of what the string holds),
// and an array coerces to its length (the same file's asDouble() returns
// std::get<Array>(value).size()). Anything that cannot be coerced at all
// reports ok=false so the caller can raise a TypeError.
func ToNumber(v Value) (float64, bool) {
	switch val := v.(type) {
	case Number:
		return val.Value, true
	case Bool:
		if val.Value {
			return 1, true
		}
		return 0, true
	case String:
		return 0, true
	case Null, Undefined:
		return 0, true
	case Array:
		return float64(len(val.Elements)), true
	default:
		return 0, false
	}
}
