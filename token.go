package digicalc

import (
	"strconv"
	"strings"
)

// --- Operators -------------------------------------------------------------

// Operator is one of the four binary arithmetic operators.
type Operator int8

// Operators supported by expressions. The zero value is not a valid operator.
const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Precedence describes how strongly an operator binds its operands.
// Operators with higher precedence are applied first.
type Precedence int8

// Precedence levels, from weakest to strongest. The ordering of operators
// above has no influence on these.
const (
	NoPrecedence Precedence = iota
	AddPrecedence
	MultPrecedence
)

// Precedence returns the precedence level of an operator.
func (op Operator) Precedence() Precedence {
	switch op {
	case Add, Subtract:
		return AddPrecedence
	case Multiply, Divide:
		return MultPrecedence
	}
	return NoPrecedence
}

const opsymbols = "?+-*/"

// String returns the operator symbol.
func (op Operator) String() string {
	if op < Add || op > Divide {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opsymbols[op : op+1]
}

// OperatorFor returns the operator for a symbol character, if any.
func OperatorFor(r rune) (Operator, bool) {
	if r == '?' {
		return NoOperator, false
	}
	i := strings.IndexRune(opsymbols, r)
	if i < 0 {
		return NoOperator, false
	}
	return Operator(i), true
}

// --- Tokens ----------------------------------------------------------------

// TokenKind tells which variant a token is.
type TokenKind int8

// Token variants
const (
	NumberToken  TokenKind = iota // a single decimal digit
	OpToken                       // a binary operator
	BracketToken                  // an opening or closing parenthesis
)

func (k TokenKind) String() string {
	switch k {
	case NumberToken:
		return "number"
	case OpToken:
		return "operator"
	case BracketToken:
		return "bracket"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is the smallest classified unit of an expression. It is a tagged
// union: Kind determines which of the other fields is meaningful.
//
// Tokens are plain values. Two tokens with equal content are equal.
type Token struct {
	Kind  TokenKind
	Value uint32   // digit value for NumberToken
	Op    Operator // operator for OpToken
	Sym   rune     // '(' or ')' for BracketToken
}

// Number creates a number token for digit d.
func Number(d uint32) Token {
	return Token{Kind: NumberToken, Value: d}
}

// Op creates an operator token.
func Op(op Operator) Token {
	return Token{Kind: OpToken, Op: op}
}

// Bracket creates a bracket token for '(' or ')'.
func Bracket(sym rune) Token {
	return Token{Kind: BracketToken, Sym: sym}
}

// IsOpen is true for an opening bracket token.
func (t Token) IsOpen() bool {
	return t.Kind == BracketToken && t.Sym == '('
}

// IsClose is true for a closing bracket token.
func (t Token) IsClose() bool {
	return t.Kind == BracketToken && t.Sym == ')'
}

// String returns the token as it would appear in source text.
func (t Token) String() string {
	switch t.Kind {
	case NumberToken:
		return strconv.FormatUint(uint64(t.Value), 10)
	case OpToken:
		return t.Op.String()
	case BracketToken:
		return string(t.Sym)
	}
	return "<" + t.Kind.String() + ">"
}

// Sequence is an ordered list of tokens. Order is significant: a sequence
// either reflects source order (infix) or evaluation order (postfix).
type Sequence []Token

// String returns the tokens of a sequence, separated by blanks.
// For a postfix sequence this is the customary RPN notation, e.g. "2 3 4 * +".
func (seq Sequence) String() string {
	var b strings.Builder
	for i, t := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Count returns the number of tokens of a given kind.
func (seq Sequence) Count(kind TokenKind) int {
	n := 0
	for _, t := range seq {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
