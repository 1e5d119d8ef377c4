/*
Package digicalc is about evaluating small arithmetic expressions.

Description

Expressions are written in the usual infix notation, with single decimal
digits as operands, the four basic binary operators

   +  -  *  /

and parentheses for grouping. Multiplication and division bind tighter than
addition and subtraction, operators of equal precedence associate to the
left, and division is integer division, truncating toward zero.

   2+3*4     => 14
   8-3-2     =>  3
   (2+3)*4   => 20
   7/2       =>  3

Numbers are restricted to single digits on purpose: "12" is read as two
numbers 1 and 2 without an operator in between, which does not reduce to a
single value. Whitespace is not allowed, with the exception of newline
characters, which are silently skipped.

Contents

Evaluation is a pipeline of three stages, each living in its own sub-package:

(1) Sub-package scanner splits input text into a sequence of tokens and checks
the nesting of brackets on the fly.

(2) Sub-package postfix re-orders a token sequence from infix to postfix order
(Reverse Polish Notation), using Dijkstra's shunting-yard algorithm, and
evaluates postfix sequences with a value stack.

(3) Sub-package calc drives the pipeline and is what most clients will want
to use.

Base package digicalc provides the data model shared by all stages: operators
with their precedence, tokens, token sequences, and the error taxonomy.
Sub-package grammar provides an optional, stricter validation of expressions,
which explains why an input fails to reduce to a value.

Results

Evaluating an expression has three possible outcomes:

(1) a value of type uint32,

(2) an arithmetic error, i.e. division by zero, or a result which does not
fit into an unsigned 32-bit integer (e.g., "2-3"),

(3) no result at all. This is signalled by an error of kind NoResult and
covers malformed postfix sequences, e.g. for input "12" or "1+". Clients
usually will want to ignore it silently.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package digicalc

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
