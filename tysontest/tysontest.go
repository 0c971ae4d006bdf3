// Package tysontest runs tables of TysonLang expressions in fresh
// environments and compares their printed results.
package tysontest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/isak-s/tysonLang/lisp"
	"github.com/isak-s/tysonLang/lisp/lisplib"
	"github.com/isak-s/tysonLang/parser"
)

// Runner is a test runner.
type Runner struct {
	// Loader is the library loader used to initialize the test environment.
	// When Loader is nil no library is loaded, only builtins.
	Loader func(*lisp.LEnv) *lisp.LVal

	// Config is applied to each test environment after the Reader is
	// installed.
	Config []lisp.Config
}

// Prelude returns a Runner whose environments have the standard prelude
// loaded.
func Prelude() *Runner {
	return &Runner{Loader: lisplib.LoadLibrary}
}

// NewEnv returns a fresh root environment.  Program output written by the
// environment is captured in the returned buffer.
func (r *Runner) NewEnv() (*lisp.LEnv, *bytes.Buffer, error) {
	var out bytes.Buffer
	env := lisp.NewEnv(nil)
	config := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(&out),
		lisp.WithStderr(&out),
	}
	config = append(config, r.Config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		return nil, nil, fmt.Errorf("failed to initialize lisp environment: %v", lerr)
	}
	if r.Loader != nil {
		lerr = r.Loader(env)
		if lerr.Type == lisp.LError {
			return nil, nil, fmt.Errorf("failed to load library: %v", lerr)
		}
	}
	return env, &out, nil
}

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Output string // the output written to the runtime's Stdout and Stderr
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs that
// have only builtins defined.
func RunTestSuite(t *testing.T, tests TestSuite) {
	(&Runner{}).RunTestSuite(t, tests)
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, out, err := r.NewEnv()
		if err != nil {
			t.Fatalf("test %d %q: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			v, err := parser.ParseLVal([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			out.Reset()
			result := env.Eval(v[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, out.String())
			}
		}
	}
}
