package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/isak-s/tysonLang/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file ...]",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.  Each
top-level expression is evaluated in order and evaluation stops at the first
error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := runReadSources(args)
		if err != nil {
			return err
		}
		env, err := newEnv(config)
		if err != nil {
			return err
		}
		for _, src := range sources {
			err = runSource(env, src.name, bytes.NewReader(src.text), runPrint, cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}
		return nil
	},
}

type runSourceText struct {
	name string
	text []byte
}

func runReadSources(args []string) ([]runSourceText, error) {
	sources := make([]runSourceText, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSourceText{fmt.Sprintf("<expr %d>", i+1), []byte(args[i])}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSourceText{path, b}
	}
	return sources, nil
}

// runSource evaluates the expressions read from r.  When printValues is true the
// value of each expression is written to w.
func runSource(env *lisp.LEnv, name string, r io.Reader, printValues bool, w io.Writer) error {
	if !printValues {
		lerr := env.Load(name, r)
		if lerr.Type == lisp.LError {
			return fmt.Errorf("%s: %w", name, lisp.GoError(lerr))
		}
		return nil
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		v := env.Eval(expr)
		fmt.Fprintln(w, v)
		if v.Type == lisp.LError {
			return fmt.Errorf("%s: %w", name, lisp.GoError(v))
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
