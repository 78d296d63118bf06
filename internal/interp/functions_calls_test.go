package interp

import (
	"bytes"
	"testing"

	interperrors "github.com/rockstar-lang/rockstar/internal/interp/errors"
	"github.com/rockstar-lang/rockstar/internal/lexer"
)

func TestCallFunctionBindsParametersAndReturns(t *testing.T) {
	it := New(nil, &bytes.Buffer{})
	body := lexer.New("Give back the number plus the number").Tokens()
	it.functions["double"] = &Function{Name: "double", Parameters: []string{"the number"}, Body: body}

	got := it.callFunction("double", []Value{Number{Value: 21}})
	if n, ok := got.(Number); !ok || n.Value != 42 {
		t.Errorf("callFunction(double, 21) = %v, want 42", got)
	}
}

func TestCallFunctionArityMismatchPanics(t *testing.T) {
	it := New(nil, &bytes.Buffer{})
	it.functions["f"] = &Function{Name: "f", Parameters: []string{"x", "y"}}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic on arity mismatch")
		}
		if _, ok := r.(*interperrors.InterpreterError); !ok {
			t.Errorf("panic value = %T, want *interperrors.InterpreterError", r)
		}
	}()
	it.callFunction("f", []Value{Number{Value: 1}})
}

func TestCallFunctionUndeclaredPanics(t *testing.T) {
	it := New(nil, &bytes.Buffer{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic calling an undeclared function")
		}
	}()
	it.callFunction("nowhere", nil)
}

func TestCallFunctionReadsParentFrame(t *testing.T) {
	it := New(nil, &bytes.Buffer{})
	it.env.Set("global", Number{Value: 99})

	// The callee's environment must fall back to the caller's for reads.
	call := newCall(nil, it.env, it.functions, "readglobal", &bytes.Buffer{})
	v, ok := call.env.Get("global")
	if !ok || v.(Number).Value != 99 {
		t.Errorf("call.env.Get(global) = (%v, %v), want (99, true)", v, ok)
	}
}
