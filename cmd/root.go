package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/isak-s/tysonLang/lisp"
	"github.com/isak-s/tysonLang/lisp/lisplib"
	"github.com/isak-s/tysonLang/parser"
	"github.com/spf13/cobra"
)

var (
	configFile string
	config     = DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tyson",
	Short: "TysonLang interpreter",
	Long: `TysonLang is a small lisp with integers, symbols, S-expressions and
Q-expressions.  Without a subcommand tyson starts an interactive prompt.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              replRun,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "",
		"config file (default is $HOME/"+DefaultConfigFile+")")
	flags.String("prompt", config.Prompt, "REPL prompt")
	flags.String("history-file", config.HistoryFile, "REPL history file")
	flags.String("line-editor", config.LineEditor, "REPL line editor (readline or liner)")
	flags.Int("max-stack-height", config.MaxStackHeight, "maximum function call depth (0 for no limit)")
	flags.Bool("prelude", config.Prelude, "load the standard prelude")
	flags.Bool("debug", config.Debug, "log evaluation events to stderr")
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	err = applyFlags(cmd, &cfg)
	if err != nil {
		return err
	}
	config = cfg
	slog.SetDefault(newLogger(config))
	return nil
}

func newLogger(cfg Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newEnv returns a root environment configured by cfg.
func newEnv(cfg Config, options ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	options = append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithMaximumStackHeight(cfg.MaxStackHeight),
		lisp.WithLogger(slog.Default()),
	}, options...)
	lerr := lisp.InitializeUserEnv(env, options...)
	if lerr.Type == lisp.LError {
		return nil, fmt.Errorf("initialize environment: %w", lisp.GoError(lerr))
	}
	if cfg.Prelude {
		lerr = lisplib.LoadLibrary(env)
		if lerr.Type == lisp.LError {
			return nil, fmt.Errorf("load prelude: %w", lisp.GoError(lerr))
		}
	}
	return env, nil
}
