package digicalc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies errors of the evaluation pipeline.
type ErrorKind int8

// Error kinds. The scanner reports InvalidToken and InvalidParenthesis,
// evaluation reports the arithmetic kinds and NoResult. InvalidExpression,
// InvalidOperator, InvalidNumber and InvalidBracket are reported by strict
// validation only (see sub-package grammar).
const (
	NoError ErrorKind = iota
	InvalidToken
	InvalidExpression
	InvalidOperator
	InvalidNumber
	InvalidBracket
	InvalidParenthesis
	InvalidDivisionByZero
	Underflow
	Overflow
	NoResult
)

var kindnames = [...]string{
	"no error",
	"invalid token",
	"invalid expression",
	"invalid operator",
	"invalid number",
	"invalid bracket",
	"invalid parenthesis",
	"division by zero",
	"arithmetic underflow",
	"arithmetic overflow",
	"no result",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "error_kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Error is the error type of all stages of the pipeline.
//
// Pos is the byte position in the source text where the error has been
// detected, or -1 if no source position is known (as is the case for
// evaluation, which operates on tokens only). Char is the offending
// character, if any.
type Error struct {
	Kind ErrorKind
	Pos  int
	Char rune
}

// NewError creates an error of a given kind at a source position.
func NewError(kind ErrorKind, pos int, char rune) *Error {
	return &Error{Kind: kind, Pos: pos, Char: char}
}

// errorOf creates an error without source position.
func errorOf(kind ErrorKind) *Error {
	return &Error{Kind: kind, Pos: -1}
}

func (e *Error) Error() string {
	switch {
	case e.Pos >= 0 && e.Char != 0:
		return fmt.Sprintf("%s %q at position %d", e.Kind, e.Char, e.Pos)
	case e.Pos >= 0:
		return fmt.Sprintf("%s at position %d", e.Kind, e.Pos)
	}
	return e.Kind.String()
}

// Is matches errors by kind only, making
//
//    errors.Is(err, digicalc.ErrInvalidToken)
//
// true for invalid tokens at any position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrInvalidToken          = errorOf(InvalidToken)
	ErrInvalidExpression     = errorOf(InvalidExpression)
	ErrInvalidOperator       = errorOf(InvalidOperator)
	ErrInvalidNumber         = errorOf(InvalidNumber)
	ErrInvalidBracket        = errorOf(InvalidBracket)
	ErrInvalidParenthesis    = errorOf(InvalidParenthesis)
	ErrInvalidDivisionByZero = errorOf(InvalidDivisionByZero)
	ErrUnderflow             = errorOf(Underflow)
	ErrOverflow              = errorOf(Overflow)
	ErrNoResult              = errorOf(NoResult)
)

// KindOf returns the error kind of err, or NoError if err is not (and does
// not wrap) an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// IsNoResult is true if err signals that an expression did not reduce to a
// value.
func IsNoResult(err error) bool {
	return errors.Is(err, ErrNoResult)
}
