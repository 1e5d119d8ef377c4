/*
Package scanner splits arithmetic expressions into tokens.

Every character of the input is classified on its own: decimal digits are
numbers (consecutive digits are never merged), '+', '-', '*' and '/' are
operators, '(' and ')' are brackets. Newline characters are skipped. Any
other character, including blanks, is an error.

The scanner checks bracket nesting while reading. A closing bracket without
a matching opening bracket, or an opening bracket left open at the end of
input, is reported as digicalc.InvalidParenthesis.

Most clients will simply call Parse. Type Scanner is provided for clients
wanting to process tokens one at a time; it implements the
scanner.Tokenizer interface of package gorgo/lr/scanner, making it usable
as input for gorgo's parsers.
*/
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/digicalc"
	lrscan "github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Scanner reads tokens from an input reader.
type Scanner struct {
	runeScanner *bufio.Scanner // we're using an embedded rune reader
	pos         uint64         // position of the next rune in input
	brackets    bracketStack   // positions of open brackets
	onError     func(error)    // error handler for NextToken
	done        bool           // at EOF or stopped by an error?
	err         error          // first error encountered
}

// NewScanner creates a scanner for expressions. Clients provide a Reader
// and zero or more scanner options.
func NewScanner(input io.Reader, opts ...ScannerOption) *Scanner {
	sc := &Scanner{}
	sc.runeScanner = bufio.NewScanner(input)
	sc.runeScanner.Split(bufio.ScanRunes)
	sc.brackets = make(bracketStack, 0, 16)
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Parse tokenizes an expression. On success, the sequence of tokens is
// returned in source order. The first error aborts scanning, and no tokens
// are returned in this case.
func Parse(text string) (digicalc.Sequence, error) {
	sc := NewScanner(strings.NewReader(text))
	seq := make(digicalc.Sequence, 0, len(text))
	for {
		token, _, err := sc.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		seq = append(seq, token)
	}
	T().Debugf("scanned '%s' into %d tokens", text, len(seq))
	return seq, nil
}

// Next reads the next token, returning it together with its byte position
// in the input. At the end of input Next returns io.EOF. If an error occurs,
// the scanner stops; subsequent calls will return the same error.
func (sc *Scanner) Next() (digicalc.Token, uint64, error) {
	if sc.done {
		if sc.err != nil {
			return digicalc.Token{}, sc.pos, sc.err
		}
		return digicalc.Token{}, sc.pos, io.EOF
	}
	for sc.runeScanner.Scan() {
		b := sc.runeScanner.Bytes()
		r, sz := utf8.DecodeRune(b)
		pos := sc.pos
		sc.pos += uint64(sz)
		switch {
		case r >= '0' && r <= '9':
			token := digicalc.Number(uint32(r - '0'))
			T().Debugf("scanned number %s at %d", token, pos)
			return token, pos, nil
		case r == '(':
			sc.brackets = sc.brackets.push(pos)
			return digicalc.Bracket(r), pos, nil
		case r == ')':
			var ok bool
			if _, ok, sc.brackets = sc.brackets.pop(); !ok {
				return digicalc.Token{}, pos, sc.stop(digicalc.NewError(digicalc.InvalidParenthesis, int(pos), r))
			}
			return digicalc.Bracket(r), pos, nil
		case r == '\n':
			continue
		}
		if op, ok := digicalc.OperatorFor(r); ok {
			T().Debugf("scanned operator %s at %d", op, pos)
			return digicalc.Op(op), pos, nil
		}
		return digicalc.Token{}, pos, sc.stop(digicalc.NewError(digicalc.InvalidToken, int(pos), r))
	}
	if err := sc.runeScanner.Err(); err != nil {
		return digicalc.Token{}, sc.pos, sc.stop(err)
	}
	if open, ok := sc.brackets.top(); ok {
		return digicalc.Token{}, open, sc.stop(digicalc.NewError(digicalc.InvalidParenthesis, int(open), '('))
	}
	sc.done = true
	return digicalc.Token{}, sc.pos, io.EOF
}

func (sc *Scanner) stop(err error) error {
	T().Debugf("scanner stopped: %v", err)
	sc.done = true
	sc.err = err
	return err
}

// Err returns the first error the scanner has encountered, if any.
func (sc *Scanner) Err() error {
	return sc.err
}

// --- Interface scanner.Tokenizer -------------------------------------------

// Token values for parsers. Operators and brackets use their character
// value, as is customary with text/scanner. All digits share a single token
// value.
const (
	DigitToken   = int('0')
	AddToken     = int('+')
	SubToken     = int('-')
	MulToken     = int('*')
	DivToken     = int('/')
	LParenToken  = int('(')
	RParenToken  = int(')')
	IllegalToken = int(utf8.RuneError)
)

// TokenValue returns the parser token value for a token.
func TokenValue(t digicalc.Token) int {
	switch t.Kind {
	case digicalc.NumberToken:
		return DigitToken
	case digicalc.OpToken:
		return int(t.Op.String()[0])
	case digicalc.BracketToken:
		return int(t.Sym)
	}
	return IllegalToken
}

// NextToken is part of interface scanner.Tokenizer. It returns the next
// token's value, the token itself, its position and its length.
//
// Errors are reported to the error handler (see SetErrorHandler); the
// scanner then returns IllegalToken once, followed by EOF.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	wasDone := sc.done
	token, pos, err := sc.Next()
	if err == io.EOF || (err != nil && wasDone) {
		return lrscan.EOF, "", sc.pos, 0
	} else if err != nil {
		if sc.onError != nil {
			sc.onError(err)
		}
		return IllegalToken, err, pos, 1
	}
	return TokenValue(token), token, pos, 1
}

// SetErrorHandler sets an error handler function, which receives errors
// found by NextToken.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.onError = h
}

// --- Bracket stack ---------------------------------------------------------

// bracketStack holds the positions of currently open brackets.
type bracketStack []uint64

func (bs bracketStack) push(pos uint64) bracketStack {
	return append(bs, pos)
}

func (bs bracketStack) pop() (uint64, bool, bracketStack) {
	if len(bs) == 0 {
		return 0, false, bs
	}
	i := len(bs) - 1
	return bs[i], true, bs[:i]
}

func (bs bracketStack) top() (uint64, bool) {
	if len(bs) == 0 {
		return 0, false
	}
	return bs[len(bs)-1], true
}

// --- Scanner options -------------------------------------------------------

// ScannerOption configures a scanner.
type ScannerOption func(sc *Scanner)

// WithErrorHandler sets an error handler for NextToken.
func WithErrorHandler(h func(error)) ScannerOption {
	return func(sc *Scanner) {
		sc.onError = h
	}
}
