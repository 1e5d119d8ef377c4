package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/digicalc"
	"github.com/npillmayer/digicalc/calc"
	"golang.org/x/text/message"
)

// repl reads expressions line by line and prints their results.
type repl struct {
	calc    *calc.Calculator
	printer *message.Printer // prints numbers for the user's locale
	out     io.Writer
	errout  io.Writer
	prompt  string
	postfix bool // print postfix form instead of value
}

func (r *repl) run(in io.Reader) error {
	lines := bufio.NewScanner(in)
	for {
		if r.prompt != "" {
			fmt.Fprint(r.out, r.prompt)
		}
		if !lines.Scan() {
			break
		}
		result, err := r.eval(lines.Text())
		if err != nil {
			fmt.Fprintf(r.errout, "error: %v\n", err)
		} else if result != "" {
			fmt.Fprintln(r.out, result)
		}
	}
	return lines.Err()
}

func (r *repl) evalOnce(line string) error {
	result, err := r.eval(line)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprintln(r.out, result)
	}
	return nil
}

// eval evaluates a single line. Lines without a result yield an empty
// string and no error.
func (r *repl) eval(line string) (string, error) {
	if r.postfix {
		rpn, err := r.calc.Postfix(line)
		if err != nil {
			return "", err
		}
		return rpn.String(), nil
	}
	v, err := r.calc.Calculate(line)
	if digicalc.IsNoResult(err) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return r.printer.Sprintf("%d", v), nil
}
