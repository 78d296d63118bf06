package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func sameKinds(t *testing.T, got []Token, want []Kind) {
	t.Helper()
	g := kinds(got)
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestCommonVariable(t *testing.T) {
	l := New("Put 1 into my world")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Put, Number, Into, Variable, EndOfFile})
	if toks[3].Text != "my world" {
		t.Errorf("common variable text = %q, want %q", toks[3].Text, "my world")
	}
}

func TestProperVariable(t *testing.T) {
	l := New("Tommy Lee is 5")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Variable, Is, Number, EndOfFile})
	if toks[0].Text != "Tommy Lee" {
		t.Errorf("proper variable text = %q, want %q", toks[0].Text, "Tommy Lee")
	}
}

func TestKeywordAliasFolding(t *testing.T) {
	l := New("Rock the list with 1, 2")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Rock, Variable, Plus, Number, Comma, Number, EndOfFile})
}

func TestMysteriousKeyword(t *testing.T) {
	l := New("Let X be mysterious")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Let, Variable, Be, Mysterious, EndOfFile})
}

func TestNullAliases(t *testing.T) {
	for _, word := range []string{"null", "nothing", "nowhere", "nobody", "gone"} {
		l := New("Let X be " + word)
		toks := l.Tokens()
		sameKinds(t, toks, []Kind{Let, Variable, Be, Null, EndOfFile})
	}
}

func TestPoeticNumberLiteral(t *testing.T) {
	// "a"=1 letter, "lovely"=6 letters, "boy"=3 letters -> "163".
	l := New("Tommy is a lovely boy")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Variable, Is, Number, EndOfFile})
	if toks[2].Text != "163" {
		t.Errorf("poetic number = %q, want %q", toks[2].Text, "163")
	}
}

func TestPoeticNumberWithDecimalPoint(t *testing.T) {
	// After "is" an article counts as a word of the literal like any
	// other, so with no period the literal is all integer digits.
	l := New("Pi is the remembered joy")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Variable, Is, Number, EndOfFile})
	// "the"=3, "remembered"=10->0, "joy"=3 => "303"
	if toks[2].Text != "303" {
		t.Errorf("poetic number = %q, want %q", toks[2].Text, "303")
	}

	// A period after a word places the decimal point there:
	// "ice"=3, ".", "a"=1, "life"=4 => "3.14".
	l = New("Pi is ice. a life")
	toks = l.Tokens()
	sameKinds(t, toks, []Kind{Variable, Is, Number, EndOfFile})
	if toks[2].Text != "3.14" {
		t.Errorf("poetic number = %q, want %q", toks[2].Text, "3.14")
	}
}

func TestPoeticStringLiteral(t *testing.T) {
	l := New("Polly says hello world")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Variable, Says, String, EndOfFile})
	if toks[2].Text != "hello world" {
		t.Errorf("poetic string = %q, want %q", toks[2].Text, "hello world")
	}
}

func TestPronoun(t *testing.T) {
	l := New("Tommy is 5\nShout it")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Variable, Is, Number, NewLine, Shout, Pronoun, EndOfFile})
}

func TestLessIsLowerAlias(t *testing.T) {
	l := New("If X is less than Y")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{If, Variable, Is, Lower, Than, Variable, EndOfFile})
}

func TestComparisonPhrases(t *testing.T) {
	// "is as great as"/"is as little as" collapse into a single operator
	// only at expression-evaluation time (checkOperator); the lexer still
	// emits the individual keyword tokens.
	l := New("If X is as great as Y")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{If, Variable, Is, As, Great, As, Variable, EndOfFile})
}

func TestStringLiteral(t *testing.T) {
	l := New(`Shout "hello there"`)
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Shout, String, EndOfFile})
	if toks[1].Text != "hello there" {
		t.Errorf("string literal = %q, want %q", toks[1].Text, "hello there")
	}
}

func TestCommentStripping(t *testing.T) {
	l := New("Let X be 5 (this is a comment)\nShout X")
	toks := l.Tokens()
	sameKinds(t, toks, []Kind{Let, Variable, Be, Number, NewLine, Shout, Variable, EndOfFile})
}
