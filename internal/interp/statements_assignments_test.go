package interp

import (
	"bytes"
	"testing"

	"github.com/rockstar-lang/rockstar/internal/lexer"
)

func runProgram(t *testing.T, src string) (*Interpreter, string) {
	t.Helper()
	var buf bytes.Buffer
	it := New(lexer.New(src).Tokens(), &buf)
	it.Eval()
	return it, buf.String()
}

func TestAssignLetArrayIndex(t *testing.T) {
	it, _ := runProgram(t, "Let X at 2 be 5\n")
	v, ok := it.env.Get("x")
	if !ok {
		t.Fatal("x was never assigned")
	}
	arr, ok := v.(Array)
	if !ok {
		t.Fatalf("x = %v, want Array", v)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("len(x) = %d, want 3", len(arr.Elements))
	}
	if n, ok := arr.Elements[2].(Number); !ok || n.Value != 5 {
		t.Errorf("x at 2 = %v, want 5", arr.Elements[2])
	}
}

func TestAssignLetImplicitOperand(t *testing.T) {
	it, _ := runProgram(t, "Let X be 5\nLet X be plus 3\n")
	v, _ := it.env.Get("x")
	if n, ok := v.(Number); !ok || n.Value != 8 {
		t.Errorf("x = %v, want 8", v)
	}
}

func TestBuildStatementIncrementsByUpCount(t *testing.T) {
	it, _ := runProgram(t, "Let X be 0\nBuild X up, up, up\n")
	v, _ := it.env.Get("x")
	if n, ok := v.(Number); !ok || n.Value != 3 {
		t.Errorf("x = %v, want 3", v)
	}
}

func TestKnockStatementDecrements(t *testing.T) {
	it, _ := runProgram(t, "Let X be 5\nKnock X down, down\n")
	v, _ := it.env.Get("x")
	if n, ok := v.(Number); !ok || n.Value != 3 {
		t.Errorf("x = %v, want 3", v)
	}
}

func TestBuildStatementFlipsBool(t *testing.T) {
	it, _ := runProgram(t, "Let X be true\nBuild X up\n")
	v, _ := it.env.Get("x")
	if b, ok := v.(Bool); !ok || b.Value != false {
		t.Errorf("x = %v, want false", v)
	}
}

func TestBuildStatementTypeErrorOnString(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic building a string variable")
		}
	}()
	runProgram(t, "Let X be \"hi\"\nBuild X up\n")
}

func TestRockAndRollFIFO(t *testing.T) {
	it, out := runProgram(t, "Rock the list with 1, 2, 3\nRoll the list into X\nShout X\n")
	v, _ := it.env.Get("x")
	if n, ok := v.(Number); !ok || n.Value != 1 {
		t.Errorf("x = %v, want 1 (FIFO pop)", v)
	}
	if out != "1\n" {
		t.Errorf("output = %q, want %q", out, "1\n")
	}
}

func TestRollOnNonArrayPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic rolling a non-array variable")
		}
	}()
	runProgram(t, "Let X be 5\nRoll X\n")
}

func TestTurnUpAndDown(t *testing.T) {
	it, _ := runProgram(t, "Let X be 1.2\nTurn up X\n")
	v, _ := it.env.Get("x")
	if n, ok := v.(Number); !ok || n.Value != 2 {
		t.Errorf("turn up 1.2 = %v, want 2", v)
	}

	it2, _ := runProgram(t, "Let Y be 1.8\nTurn down Y\n")
	v2, _ := it2.env.Get("y")
	if n, ok := v2.(Number); !ok || n.Value != 1 {
		t.Errorf("turn down 1.8 = %v, want 1", v2)
	}
}

func TestAssignPutInto(t *testing.T) {
	it, _ := runProgram(t, "Put 5 into X\n")
	v, ok := it.env.Get("x")
	if !ok {
		t.Fatal("x was never assigned")
	}
	if n, ok := v.(Number); !ok || n.Value != 5 {
		t.Errorf("x = %v, want 5", v)
	}
}
