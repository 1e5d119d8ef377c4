package main

import (
	"github.com/npillmayer/digicalc/calc"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

var (
	cfgFile     string
	verbose     bool
	strict      bool
	expr        string
	locale      string
	prompt      string
	showPostfix bool
)

var rootCmd = &cobra.Command{
	Use:   "digicalc",
	Short: "Evaluate arithmetic expressions over single digits",
	Long: `digicalc evaluates expressions built from single digits 0-9, the
operators + - * / and parentheses, e.g. "(2+3)*4". Division is integer
division. Blanks are not allowed.

Without --expr, expressions are read from standard input, one per line.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace evaluation steps")
	rootCmd.Flags().BoolVarP(&strict, "strict", "s", false, "validate expressions against the grammar")
	rootCmd.Flags().StringVarP(&expr, "expr", "e", "", "evaluate a single expression and exit")
	rootCmd.Flags().StringVar(&locale, "locale", "", "locale for printing numbers (default: from environment)")
	rootCmd.Flags().StringVar(&prompt, "prompt", "", "prompt to print before reading a line")
	rootCmd.Flags().BoolVarP(&showPostfix, "postfix", "p", false, "print expressions in postfix order instead of evaluating them")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("locale") {
		cfg.Locale = locale
	}
	if flags.Changed("prompt") {
		cfg.Prompt = prompt
	}
	setupTracing(cfg.Verbose)
	r := &repl{
		calc:    calc.New(calc.Strict(cfg.Strict)),
		printer: message.NewPrinter(localeTag(cfg.Locale)),
		out:     cmd.OutOrStdout(),
		errout:  cmd.ErrOrStderr(),
		prompt:  cfg.Prompt,
		postfix: showPostfix,
	}
	if flags.Changed("expr") {
		return r.evalOnce(expr)
	}
	return r.run(cmd.InOrStdin())
}

func setupTracing(verbose bool) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	gtrace.SyntaxTracer.SetTraceLevel(level)
}

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
