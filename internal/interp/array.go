package interp

// coerceArray returns v as an *Array, replacing it with a fresh empty
// array first if it isn't one already. This mirrors the original
// evaluator's Value::push, which silently turns whatever the target held
// into an array the first time something is rocked onto it.
func coerceArray(v Value) *Array {
	if arr, ok := v.(Array); ok {
		return &arr
	}
	return &Array{}
}

// indexValue converts a Value used as an array subscript into an int
// index. Non-numeric subscripts are rejected by the caller via the second
// return value.
func indexValue(v Value) (int, bool) {
	f, ok := ToNumber(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}
