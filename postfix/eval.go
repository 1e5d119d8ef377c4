package postfix

import (
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/digicalc"
	"github.com/npillmayer/digicalc/internal/stackpool"
)

// Evaluate computes the value of a postfix sequence.
//
// If an operator lacks an operand, or if more than one value is left after
// all tokens are processed, Evaluate returns an error of kind
// digicalc.NoResult. The same is true for an empty sequence.
// Arithmetic errors abort evaluation immediately. Bracket tokens are ignored.
func Evaluate(tokens digicalc.Sequence) (uint32, error) {
	stack := stackpool.Borrow()
	defer stackpool.Release(stack)
	for _, token := range tokens {
		switch token.Kind {
		case digicalc.NumberToken:
			stack.Push(token.Value)
		case digicalc.OpToken:
			r, ok := popValue(stack)
			if !ok {
				T().Debugf("operator %s is missing its right operand", token.Op)
				return 0, digicalc.ErrNoResult
			}
			l, ok := popValue(stack)
			if !ok {
				T().Debugf("operator %s is missing its left operand", token.Op)
				return 0, digicalc.ErrNoResult
			}
			v, err := Apply(token.Op, l, r)
			if err != nil {
				return 0, err
			}
			T().Debugf("%d %s %d = %d", l, token.Op, r, v)
			stack.Push(v)
		}
	}
	if stack.Size() != 1 {
		T().Debugf("expression reduced to %d values instead of 1", stack.Size())
		return 0, digicalc.ErrNoResult
	}
	v, _ := popValue(stack)
	return v, nil
}

func popValue(stack *arraystack.Stack) (uint32, bool) {
	v, ok := stack.Pop()
	if !ok {
		return 0, false
	}
	return v.(uint32), true
}

// Apply applies a binary operator to two operands. Results which are
// negative or which exceed the range of uint32 are reported as
// digicalc.Underflow or digicalc.Overflow, respectively.
func Apply(op digicalc.Operator, l, r uint32) (uint32, error) {
	switch op {
	case digicalc.Add:
		if s := uint64(l) + uint64(r); s <= math.MaxUint32 {
			return uint32(s), nil
		}
		return 0, digicalc.ErrOverflow
	case digicalc.Subtract:
		if r > l {
			return 0, digicalc.ErrUnderflow
		}
		return l - r, nil
	case digicalc.Multiply:
		if p := uint64(l) * uint64(r); p <= math.MaxUint32 {
			return uint32(p), nil
		}
		return 0, digicalc.ErrOverflow
	case digicalc.Divide:
		if r == 0 {
			return 0, digicalc.ErrInvalidDivisionByZero
		}
		return l / r, nil
	}
	return 0, digicalc.ErrInvalidOperator
}
