package postfix

import (
	"github.com/npillmayer/digicalc"
	"github.com/npillmayer/digicalc/internal/stackpool"
)

// Convert re-orders an infix token sequence to postfix order.
//
// Operators of equal precedence are left-associative. Brackets are consumed
// and never appear in the result, as long as the input is well-formed.
func Convert(tokens digicalc.Sequence) digicalc.Sequence {
	out := make(digicalc.Sequence, 0, len(tokens))
	stack := stackpool.Borrow()
	defer stackpool.Release(stack)
	for _, token := range tokens {
		switch token.Kind {
		case digicalc.NumberToken:
			out = append(out, token)
		case digicalc.OpToken:
			prec := token.Op.Precedence()
			for !stack.Empty() {
				v, _ := stack.Peek()
				top := v.(digicalc.Token)
				if top.Kind != digicalc.OpToken || top.Op.Precedence() < prec {
					break
				}
				stack.Pop()
				out = append(out, top)
			}
			stack.Push(token)
		case digicalc.BracketToken:
			if token.IsOpen() {
				stack.Push(token)
				continue
			}
			for !stack.Empty() { // an empty stack means a missing '('; ignore it
				v, _ := stack.Pop()
				top := v.(digicalc.Token)
				if top.IsOpen() {
					break
				}
				out = append(out, top)
			}
		}
	}
	for !stack.Empty() {
		v, _ := stack.Pop()
		out = append(out, v.(digicalc.Token))
	}
	T().Debugf("postfix: %s", out)
	return out
}
