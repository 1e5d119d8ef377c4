package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/digicalc/calc"
	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newTestRepl(strict, postfix bool) (*repl, *bytes.Buffer, *bytes.Buffer) {
	out, errout := &bytes.Buffer{}, &bytes.Buffer{}
	r := &repl{
		calc:    calc.New(calc.Strict(strict)),
		printer: message.NewPrinter(language.English),
		out:     out,
		errout:  errout,
		postfix: postfix,
	}
	return r, out, errout
}

func TestRepl(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r, out, errout := newTestRepl(false, false)
	input := "2+3*4\n12\n5/0\n\n(2+3)*4\n1 + 2\n"
	if err := r.run(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	if out.String() != "14\n20\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	expected := "error: division by zero\nerror: invalid token ' ' at position 1\n"
	if errout.String() != expected {
		t.Errorf("unexpected error output %q", errout.String())
	}
}

func TestReplStrict(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r, out, errout := newTestRepl(true, false)
	if err := r.run(strings.NewReader("12\n7")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "7\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if errout.String() != "error: invalid number '2' at position 1\n" {
		t.Errorf("unexpected error output %q", errout.String())
	}
}

func TestReplPostfix(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r, out, _ := newTestRepl(false, true)
	r.prompt = "> "
	if err := r.run(strings.NewReader("2+3*4\n")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "> 2 3 4 * +\n> " {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestConfig(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "digicalc.toml")
	content := "strict = true\nprompt = \"? \"\nlocale = \"de-DE\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Strict || cfg.Prompt != "? " || cfg.Locale != "de-DE" || cfg.Verbose {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg, err = loadConfig(""); err != nil || cfg.Strict {
		t.Errorf("expected defaults for empty path, have %+v (err=%v)", cfg, err)
	}
	if _, err = loadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("precision = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err = loadConfig(bad); err == nil || !strings.Contains(err.Error(), "precision") {
		t.Errorf("expected error for unknown setting, have %v", err)
	}
}

func TestLocaleTag(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if tag := localeTag("de-DE"); tag != language.MustParse("de-DE") {
		t.Errorf("expected de-DE, have %v", tag)
	}
	if tag := localeTag("not a locale!"); tag != language.AmericanEnglish {
		t.Errorf("expected fallback to en-US, have %v", tag)
	}
	t.Logf("user environment has locale %v", localeTag(""))
}

func TestRootCommand(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--locale", "en", "-e", "(2+3)*4"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "20\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	rootCmd.SetArgs([]string{"--locale", "en", "-e", "5/0"})
	if err := rootCmd.Execute(); err == nil {
		t.Errorf("expected division by zero to fail the command")
	}
}
