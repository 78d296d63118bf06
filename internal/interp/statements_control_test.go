package interp

import "testing"

func TestIfTrueBranch(t *testing.T) {
	_, out := runProgram(t, "If 1 is 1\nShout \"yes\"\n\n")
	if out != "yes\n" {
		t.Errorf("output = %q, want %q", out, "yes\n")
	}
}

func TestIfFalseSkipsBody(t *testing.T) {
	_, out := runProgram(t, "If 1 is 2\nShout \"yes\"\n\nShout \"after\"\n")
	if out != "after\n" {
		t.Errorf("output = %q, want %q", out, "after\n")
	}
}

func TestIfElseBranch(t *testing.T) {
	_, out := runProgram(t, "If 1 is 2\nShout \"yes\"\nElse\nShout \"no\"\n\n")
	if out != "no\n" {
		t.Errorf("output = %q, want %q", out, "no\n")
	}
}

func TestNestedIfBlocksCloseIndependently(t *testing.T) {
	src := "If 1 is 1\nIf 2 is 2\nShout \"inner\"\n\nShout \"outer\"\n\nShout \"after\"\n"
	_, out := runProgram(t, src)
	if out != "inner\nouter\nafter\n" {
		t.Errorf("output = %q, want %q", out, "inner\nouter\nafter\n")
	}
}

func TestIfReturnPropagatesThroughFunctionBody(t *testing.T) {
	src := "Choose takes the number\nIf the number is greater than 0\nGive back 1\n\nGive back 0\n\nShout Choose taking 5\n"
	_, out := runProgram(t, src)
	if out != "1\n" {
		t.Errorf("output = %q, want %q", out, "1\n")
	}
}
