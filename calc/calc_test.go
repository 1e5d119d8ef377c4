package calc

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/digicalc"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestCalculate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		text  string
		value uint32
	}{
		{"2+3*4", 14},
		{"8-3-2", 3},
		{"(2+3)*4", 20},
		{"7/2", 3},
		{"7", 7},
		{"1+2\n", 3},
	}
	for _, strict := range []bool{false, true} {
		c := New(Strict(strict))
		for _, cs := range cases {
			v, err := c.Calculate(cs.text)
			if err != nil {
				t.Errorf("%q (strict=%v): unexpected error %v", cs.text, strict, err)
			} else if v != cs.value {
				t.Errorf("%q (strict=%v): expected %d, have %d", cs.text, strict, cs.value, v)
			}
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		text            string
		lenient, strict digicalc.ErrorKind
	}{
		{"5/0", digicalc.InvalidDivisionByZero, digicalc.InvalidDivisionByZero},
		{"2-3", digicalc.Underflow, digicalc.Underflow},
		{"1 + 2", digicalc.InvalidToken, digicalc.InvalidToken},
		{")(", digicalc.InvalidParenthesis, digicalc.InvalidParenthesis},
		{"(1", digicalc.InvalidParenthesis, digicalc.InvalidParenthesis},
		{"1)", digicalc.InvalidParenthesis, digicalc.InvalidParenthesis},
		{"12", digicalc.NoResult, digicalc.InvalidNumber},
		{"1+", digicalc.NoResult, digicalc.InvalidOperator},
		{"()", digicalc.NoResult, digicalc.InvalidBracket},
		{"", digicalc.NoResult, digicalc.InvalidExpression},
	}
	lenient, strict := New(), New(Strict(true))
	for _, cs := range cases {
		if _, err := lenient.Calculate(cs.text); digicalc.KindOf(err) != cs.lenient {
			t.Errorf("%q: expected %s, have %v", cs.text, cs.lenient, err)
		}
		if _, err := strict.Calculate(cs.text); digicalc.KindOf(err) != cs.strict {
			t.Errorf("%q (strict): expected %s, have %v", cs.text, cs.strict, err)
		}
	}
}

func TestPostfix(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rpn, err := New().Postfix("(1+2)*3-4/2")
	if err != nil {
		t.Fatal(err)
	}
	if rpn.String() != "1 2 + 3 * 4 2 / -" {
		t.Errorf("unexpected postfix '%s'", rpn)
	}
	if _, err = New(Strict(true)).Postfix("1++2"); !errors.Is(err, digicalc.ErrInvalidOperator) {
		t.Errorf("expected invalid operator in strict mode, have %v", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	c := New(Strict(true))
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			text := fmt.Sprintf("(%d+1)*2", d)
			v, err := c.Calculate(text)
			if err != nil || v != uint32((d+1)*2) {
				t.Errorf("%q: expected %d, have %d (err=%v)", text, (d+1)*2, v, err)
			}
		}(i)
	}
	wg.Wait()
}

func ExampleEval() {
	fmt.Println(Eval("2+3*4"))
	fmt.Println(Eval("(2+3)*4"))
	fmt.Println(Eval("8-3-2"))
	fmt.Println(Eval("5/0"))
	fmt.Println(Eval("2-3"))
	fmt.Println(Eval("1 + 2"))
	fmt.Println(Eval("(1"))
	fmt.Println(Eval("12"))
	// Output:
	// 14 <nil>
	// 20 <nil>
	// 3 <nil>
	// 0 division by zero
	// 0 arithmetic underflow
	// 0 invalid token ' ' at position 1
	// 0 invalid parenthesis '(' at position 0
	// 0 no result
}
