/*
Package postfix converts token sequences to postfix order and evaluates them.

Convert implements Dijkstra's shunting-yard algorithm. It re-orders a
sequence of tokens, as produced by package scanner, from infix order to
postfix order (Reverse Polish Notation):

   2+3*4     =>   2 3 4 * +
   (2+3)*4   =>   2 3 + 4 *
   8-3-2     =>   8 3 - 2 -

Convert never fails. Sequences with unbalanced brackets, which the scanner
will never produce, are converted to a malformed postfix sequence; it is up
to Evaluate to detect this.

Evaluate processes a postfix sequence with a value stack. It returns either
a value, an arithmetic error (division by zero, underflow, overflow), or an
error of kind digicalc.NoResult if the sequence does not reduce to exactly
one value.
*/
package postfix

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
