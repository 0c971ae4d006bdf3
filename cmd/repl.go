package cmd

import (
	"os"

	"github.com/isak-s/tysonLang/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive prompt",
	Long: `Start an interactive prompt.  Each line of input is evaluated as a
single S-expression and its value is printed.`,
	Args: cobra.NoArgs,
	RunE: replRun,
}

func replRun(cmd *cobra.Command, args []string) error {
	env, err := newEnv(config)
	if err != nil {
		return err
	}
	lr, err := repl.NewLineReader(config.LineEditor, config.Prompt, config.HistoryFile)
	if err != nil {
		return err
	}
	defer lr.Close()
	return repl.RunRepl(env, lr, os.Stdout)
}

func init() {
	rootCmd.AddCommand(replCmd)
}
