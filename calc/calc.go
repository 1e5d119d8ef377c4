/*
Package calc drives the evaluation of arithmetic expressions.

Typical Usage

A Calculator chains the stages of the evaluation pipeline: scanning the
input text into tokens, re-ordering tokens into postfix order, and
evaluating the postfix sequence.

  c := calc.New()
  v, err := c.Calculate("(2+3)*4")
  switch {
  case digicalc.IsNoResult(err):
      // expression does not reduce to a value; usually ignored
  case err != nil:
      // lexical or arithmetic error
  default:
      fmt.Println(v) // 20
  }

For a one-shot evaluation with default settings, clients may call Eval.

Calculators in strict mode validate expressions against a grammar before
evaluating them (see package grammar). They will report syntax errors such
as digicalc.InvalidNumber or digicalc.InvalidOperator instead of
digicalc.NoResult.

Calculators do not carry state between calls and are safe for concurrent use.
*/
package calc

import (
	"github.com/npillmayer/digicalc"
	"github.com/npillmayer/digicalc/grammar"
	"github.com/npillmayer/digicalc/postfix"
	"github.com/npillmayer/digicalc/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Calculator evaluates expressions.
type Calculator struct {
	strict bool
}

// Option configures a Calculator.
type Option func(c *Calculator)

// Strict switches strict grammar validation on or off.
func Strict(b bool) Option {
	return func(c *Calculator) {
		c.strict = b
	}
}

// New creates a calculator. Without options, the calculator is not strict.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsStrict is true if c validates expressions against a grammar.
func (c *Calculator) IsStrict() bool {
	return c.strict
}

// Postfix scans an expression and returns its tokens in postfix order.
func (c *Calculator) Postfix(text string) (digicalc.Sequence, error) {
	tokens, err := scanner.Parse(text)
	if err != nil {
		T().Debugf("cannot scan '%s': %v", text, err)
		return nil, err
	}
	if c.strict {
		if err = grammar.Check(text); err != nil {
			return nil, err
		}
	}
	return postfix.Convert(tokens), nil
}

// Calculate evaluates an expression. Expressions which do not reduce to a
// value result in an error of kind digicalc.NoResult.
func (c *Calculator) Calculate(text string) (uint32, error) {
	rpn, err := c.Postfix(text)
	if err != nil {
		return 0, err
	}
	v, err := postfix.Evaluate(rpn)
	if err != nil {
		T().Debugf("'%s' => %v", text, err)
		return 0, err
	}
	T().Debugf("'%s' => %d", text, v)
	return v, nil
}

var defaultCalculator = New()

// Eval evaluates an expression with a non-strict calculator.
func Eval(text string) (uint32, error) {
	return defaultCalculator.Calculate(text)
}
