/*
Package grammar validates expressions against a context-free grammar.

Package scanner accepts any sequence of digits, operators and well-nested
brackets, and evaluation reports sequences which do not reduce to a single
value as digicalc.NoResult, without further explanation. Clients wanting
stricter validation may check expressions with this package first. The
grammar is the usual one for arithmetic expressions:

   Expr   ➞ Expr AddOp Term  |  Term
   Term   ➞ Term MulOp Factor  |  Factor
   Factor ➞ digit  |  ( Expr )

Expressions are parsed with an Earley parser. If an expression is rejected,
Check will find the first offending pair of adjacent tokens and report it
as one of

   digicalc.InvalidNumber      a digit follows a digit, as in "12"
   digicalc.InvalidOperator    an operator lacks an operand, as in "1+*2" or "(+1)"
   digicalc.InvalidBracket     a bracket is misplaced, as in "()" or "2(3)"
   digicalc.InvalidExpression  anything else, i.e. empty input

Every expression accepted by Check evaluates either to a value or to an
arithmetic error, never to digicalc.NoResult.
*/
package grammar

import (
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/digicalc"
	"github.com/npillmayer/digicalc/scanner"
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// --- Initialization --------------------------------------------------------

var globalExprGrammar *lr.LRAnalysis

var initGrammar sync.Once

func getParser() *earley.Parser {
	initGrammar.Do(func() {
		globalExprGrammar = NewExpressionGrammar()
	})
	parser := earley.NewParser(globalExprGrammar)
	if parser == nil {
		panic("could not create expression parser")
	}
	return parser
}

// NewExpressionGrammar creates the grammar for arithmetic expressions. It is
// usually not called by clients directly, but rather used transparently with
// a call to Check.
func NewExpressionGrammar() *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("digicalc")
	b.LHS("Expr").N("Expr").N("AddOp").N("Term").End()
	b.LHS("Expr").N("Term").End()
	b.LHS("Term").N("Term").N("MulOp").N("Factor").End()
	b.LHS("Term").N("Factor").End()
	b.LHS("Factor").T(tok(scanner.DigitToken)).End()
	b.LHS("Factor").T(tok(scanner.LParenToken)).N("Expr").T(tok(scanner.RParenToken)).End()
	b.LHS("AddOp").T(tok(scanner.AddToken)).End()
	b.LHS("AddOp").T(tok(scanner.SubToken)).End()
	b.LHS("MulOp").T(tok(scanner.MulToken)).End()
	b.LHS("MulOp").T(tok(scanner.DivToken)).End()
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

func tok(tokval int) (string, int) {
	if tokval == scanner.DigitToken {
		return "digit", tokval
	}
	return string(rune(tokval)), tokval
}

// --- Checking --------------------------------------------------------------

// Check validates an expression. Lexical errors are reported exactly as
// scanner.Parse reports them. Syntax errors are reported as described in the
// package documentation, with the byte position of the offending token.
func Check(text string) error {
	if _, err := scanner.Parse(text); err != nil {
		return err
	}
	parser := getParser()
	accept, err := parser.Parse(scanner.NewScanner(strings.NewReader(text)), nil)
	if err != nil {
		T().Debugf("parser error for '%s': %v", text, err)
	}
	if accept && err == nil {
		T().Debugf("accepted '%s'", text)
		return nil
	}
	return diagnose(text)
}

// diagnose finds the first pair of adjacent tokens which cannot occur in a
// valid expression.
func diagnose(text string) error {
	sc := scanner.NewScanner(strings.NewReader(text))
	var prev digicalc.Token
	var prevPos uint64
	first := true
	for {
		token, pos, err := sc.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if e := checkAdjacent(prev, token, first, int(prevPos), int(pos)); e != nil {
			T().Debugf("rejected '%s': %v", text, e)
			return e
		}
		prev, prevPos, first = token, pos, false
	}
	if first {
		return digicalc.NewError(digicalc.InvalidExpression, 0, 0)
	}
	if prev.Kind == digicalc.OpToken {
		return digicalc.NewError(digicalc.InvalidOperator, int(prevPos), symbol(prev))
	}
	T().Errorf("grammar rejected '%s', but no offending token found", text)
	return digicalc.NewError(digicalc.InvalidExpression, -1, 0)
}

func checkAdjacent(prev, token digicalc.Token, first bool, prevPos, pos int) *digicalc.Error {
	if first {
		if token.Kind == digicalc.OpToken {
			return digicalc.NewError(digicalc.InvalidOperator, pos, symbol(token))
		}
		return nil
	}
	switch token.Kind {
	case digicalc.NumberToken:
		if prev.Kind == digicalc.NumberToken {
			return digicalc.NewError(digicalc.InvalidNumber, pos, symbol(token))
		}
		if prev.IsClose() {
			return digicalc.NewError(digicalc.InvalidBracket, pos, symbol(token))
		}
	case digicalc.OpToken:
		if prev.Kind == digicalc.OpToken || prev.IsOpen() {
			return digicalc.NewError(digicalc.InvalidOperator, pos, symbol(token))
		}
	case digicalc.BracketToken:
		if token.IsOpen() && (prev.Kind == digicalc.NumberToken || prev.IsClose()) {
			return digicalc.NewError(digicalc.InvalidBracket, pos, symbol(token))
		}
		if token.IsClose() && prev.IsOpen() {
			return digicalc.NewError(digicalc.InvalidBracket, pos, symbol(token))
		}
		if token.IsClose() && prev.Kind == digicalc.OpToken {
			return digicalc.NewError(digicalc.InvalidOperator, prevPos, symbol(prev))
		}
	}
	return nil
}

func symbol(t digicalc.Token) rune {
	return []rune(t.String())[0]
}
