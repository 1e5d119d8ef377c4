/*
Command digicalc evaluates arithmetic expressions over single digits.

Expressions are read from standard input, one per line, and the result of
each is printed on a line of its own. Errors are reported on standard error.
Lines which do not reduce to a value (e.g., "12") print nothing, unless
strict mode is enabled.

Usage:

   digicalc [flags]
   echo "(2+3)*4" | digicalc
   digicalc -e "2+3*4"

Settings may be given in a TOML file (see --config):

   strict  = true
   prompt  = "> "
   locale  = "de-DE"
   verbose = false
*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
