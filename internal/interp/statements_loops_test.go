package interp

import "testing"

func TestWhileLoopRunsUntilConditionFalse(t *testing.T) {
	it, out := runProgram(t, "Let X be 0\nWhile X is lower than 3\nBuild X up\n\nShout X\n")
	v, _ := it.env.Get("x")
	if n, ok := v.(Number); !ok || n.Value != 3 {
		t.Errorf("x = %v, want 3", v)
	}
	if out != "3\n" {
		t.Errorf("output = %q, want %q", out, "3\n")
	}
}

func TestWhileLoopNeverRuns(t *testing.T) {
	_, out := runProgram(t, "Let X be 5\nWhile X is lower than 3\nShout \"never\"\n\nShout \"done\"\n")
	if out != "done\n" {
		t.Errorf("output = %q, want %q", out, "done\n")
	}
}

func TestUntilLoopRunsWhileConditionFalse(t *testing.T) {
	it, _ := runProgram(t, "Let X be 0\nUntil X is 3\nBuild X up\n\n")
	v, _ := it.env.Get("x")
	if n, ok := v.(Number); !ok || n.Value != 3 {
		t.Errorf("x = %v, want 3", v)
	}
}

func TestNestedLoopsCloseIndependently(t *testing.T) {
	src := "Let X be 0\nLet Total be 0\nWhile X is lower than 2\nLet Y be 0\nWhile Y is lower than 2\nBuild Total up\nBuild Y up\n\nBuild X up\n\nShout Total\n"
	_, out := runProgram(t, src)
	if out != "4\n" {
		t.Errorf("output = %q, want %q", out, "4\n")
	}
}
