// Package repl implements the interactive TysonLang prompt.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/isak-s/tysonLang/lisp"
	"github.com/isak-s/tysonLang/parser"
)

// Version is the language version reported in the banner.
const Version = "0.0.0.2.1"

// DefaultPrompt is the prompt used when none is configured.
const DefaultPrompt = "TysonLang> "

// Banner is printed when the REPL starts.
var Banner = fmt.Sprintf("TysonLang Version %s\nPress Ctrl+c to Exit\n\n", Version)

// ErrInterrupt is returned by a LineReader when the user interrupts input
// (Ctrl+C).
var ErrInterrupt = errors.New("interrupt")

// LineReader reads lines of input from the user.  ReadLine returns io.EOF
// when input is exhausted and ErrInterrupt when the user interrupts it.
type LineReader interface {
	ReadLine() (string, error)
	AddHistory(line string) error
	Close() error
}

// RunRepl prints the banner to w and evaluates lines read from lr in env
// until input ends or is interrupted.  Each line is read as a single
// S-expression and its value is printed to w.
func RunRepl(env *lisp.LEnv, lr LineReader, w io.Writer) error {
	fmt.Fprint(w, Banner)
	for {
		line, err := lr.ReadLine()
		if err == io.EOF || errors.Is(err, ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		err = lr.AddHistory(line)
		if err != nil {
			env.Runtime.Logger.Warn("unable to save history", "error", err)
		}
		fmt.Fprintln(w, EvalLine(env, line))
	}
}

// EvalLine parses line and evaluates it in env, returning the printed
// result.  Syntax errors are reported without evaluating anything.
func EvalLine(env *lisp.LEnv, line string) string {
	root, err := parser.Parse([]byte(line))
	if err != nil {
		return fmt.Sprintf("<stdin>: %v", err)
	}
	return env.Eval(lisp.Read(root)).String()
}
