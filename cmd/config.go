package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/isak-s/tysonLang/lisp"
	"github.com/isak-s/tysonLang/repl"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the config file looked up in the user's
// home directory when --config is not given.
const DefaultConfigFile = ".tyson.yaml"

// DefaultHistoryFile is the name of the REPL history file in the user's home
// directory.
const DefaultHistoryFile = ".tyson_history"

// Config holds the options of the tyson command.
type Config struct {
	Prompt         string `yaml:"prompt"`
	HistoryFile    string `yaml:"history_file"`
	LineEditor     string `yaml:"line_editor"`
	MaxStackHeight int    `yaml:"max_stack_height"`
	Prelude        bool   `yaml:"prelude"`
	Debug          bool   `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	cfg := Config{
		Prompt:         repl.DefaultPrompt,
		LineEditor:     repl.EditorReadline,
		MaxStackHeight: lisp.DefaultMaxStackHeight,
		Prelude:        true,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, DefaultHistoryFile)
	}
	return cfg
}

// ReadConfig decodes a YAML document from r.  Fields missing from the
// document keep their default values.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	if err != nil && err != io.EOF {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads the config file at path.  When path is empty the default
// file in the user's home directory is read if it exists.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, DefaultConfigFile)
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns an error if cfg contains invalid options.
func (cfg *Config) Validate() error {
	switch cfg.LineEditor {
	case repl.EditorReadline, repl.EditorLiner:
	default:
		return fmt.Errorf("invalid line_editor: %q", cfg.LineEditor)
	}
	if cfg.MaxStackHeight < 0 {
		return fmt.Errorf("invalid max_stack_height: %d", cfg.MaxStackHeight)
	}
	return nil
}

// applyFlags overrides fields of cfg with the flags explicitly set on cmd.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("prompt") {
		cfg.Prompt, err = flags.GetString("prompt")
	}
	if err == nil && flags.Changed("history-file") {
		cfg.HistoryFile, err = flags.GetString("history-file")
	}
	if err == nil && flags.Changed("line-editor") {
		cfg.LineEditor, err = flags.GetString("line-editor")
	}
	if err == nil && flags.Changed("max-stack-height") {
		cfg.MaxStackHeight, err = flags.GetInt("max-stack-height")
	}
	if err == nil && flags.Changed("prelude") {
		cfg.Prelude, err = flags.GetBool("prelude")
	}
	if err == nil && flags.Changed("debug") {
		cfg.Debug, err = flags.GetBool("debug")
	}
	if err != nil {
		return err
	}
	return cfg.Validate()
}
