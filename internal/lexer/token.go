package lexer

import "fmt"

// Kind identifies the grammatical role a Token plays once the stitching
// phase has finished reshaping the raw word stream.
type Kind int

const (
	EndOfFile Kind = iota
	NewLine
	Comma

	Identifier // left over only when classification fails to resolve a word
	Variable   // a stitched proper/common variable name, already case-folded
	Number
	String
	Pronoun

	// keywords, one Kind per distinct grammatical role
	Is
	Isnt
	Into
	Put
	Shout
	Plus
	Minus
	Times
	Over
	Says
	True
	False
	Null
	Knock
	Down
	Build
	Up
	Let
	Be
	And
	Or
	Not
	Whisper
	Takes
	Taking
	Give
	Back
	At
	Rock
	Like
	Roll
	Turn
	If
	Else
	While
	Until
	Greater
	Lower
	As
	Great
	Little
	Than
	Mysterious
)

var kindNames = map[Kind]string{
	EndOfFile:  "EndOfFile",
	NewLine:    "NewLine",
	Comma:      "Comma",
	Identifier: "Identifier",
	Variable:   "Variable",
	Number:     "Number",
	String:     "String",
	Pronoun:    "Pronoun",
	Is:         "Is",
	Isnt:       "Isnt",
	Into:       "Into",
	Put:        "Put",
	Shout:      "Shout",
	Plus:       "Plus",
	Minus:      "Minus",
	Times:      "Times",
	Over:       "Over",
	Says:       "Says",
	True:       "True",
	False:      "False",
	Null:       "Null",
	Knock:      "Knock",
	Down:       "Down",
	Build:      "Build",
	Up:         "Up",
	Let:        "Let",
	Be:         "Be",
	And:        "And",
	Or:         "Or",
	Not:        "Not",
	Whisper:    "Whisper",
	Takes:      "Takes",
	Taking:     "Taking",
	Give:       "Give",
	Back:       "Back",
	At:         "At",
	Rock:       "Rock",
	Like:       "Like",
	Roll:       "Roll",
	Turn:       "Turn",
	If:         "If",
	Else:       "Else",
	While:      "While",
	Until:      "Until",
	Greater:    "Greater",
	Lower:      "Lower",
	As:         "As",
	Great:      "Great",
	Little:     "Little",
	Than:       "Than",
	Mysterious: "Mysterious",
}

// String renders the kind's symbolic name, used by diagnostics and tests.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position identifies a line in the source. Rockstar programs carry no
// column information in diagnostics (spec Non-goals), so a Position is a
// bare line number.
type Position struct {
	Line int
}

// Token is a single lexical unit produced by the scanner.
type Token struct {
	Kind Kind
	Text string
	Line int
}

// Pos returns the token's Position for diagnostic formatting.
func (t Token) Pos() Position {
	return Position{Line: t.Line}
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// expressionKinds are the token kinds that may appear inside an expression
// operand/operator stream, mirroring Scanner::isExpressionToken.
var expressionKinds = map[Kind]bool{
	Variable: true, Number: true, String: true, Pronoun: true,
	True: true, False: true, Null: true,
	Plus: true, Minus: true, Times: true, Over: true,
	And: true, Or: true, Not: true,
	Is: true, Isnt: true, Greater: true, Lower: true, As: true,
	Great: true, Little: true, Than: true, Mysterious: true,
}

// IsExpressionToken reports whether k can occur within an expression.
func IsExpressionToken(k Kind) bool {
	return expressionKinds[k]
}

// IsParameterSeparator reports whether k separates function-call arguments.
func IsParameterSeparator(k Kind) bool {
	return k == And || k == Comma
}
