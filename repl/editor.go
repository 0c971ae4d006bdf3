package repl

import (
	"errors"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/peterh/liner"
)

// Line editors supported by NewLineReader.
const (
	EditorReadline = "readline"
	EditorLiner    = "liner"
)

// NewLineReader returns a LineReader backed by the named line editor.  An
// empty historyFile disables persistent history.
func NewLineReader(editor, prompt, historyFile string) (LineReader, error) {
	switch editor {
	case "", EditorReadline:
		return NewReadline(prompt, historyFile)
	case EditorLiner:
		return NewLiner(prompt, historyFile), nil
	default:
		return nil, fmt.Errorf("unknown line editor: %q", editor)
	}
}

type readlineReader struct {
	rl *readline.Instance
}

// NewReadline returns a LineReader using github.com/chzyer/readline.
func NewReadline(prompt, historyFile string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt,
		HistoryFile:            historyFile,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("readline: %w", err)
	}
	return &readlineReader{rl}, nil
}

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return line, ErrInterrupt
	}
	return line, err
}

func (r *readlineReader) AddHistory(line string) error {
	return r.rl.SaveHistory(line)
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

type linerReader struct {
	state       *liner.State
	prompt      string
	historyFile string
}

// NewLiner returns a LineReader using github.com/peterh/liner.  History is
// read from historyFile immediately and written back by Close.
func NewLiner(prompt, historyFile string) LineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerReader{
		state:       state,
		prompt:      prompt,
		historyFile: historyFile,
	}
}

func (r *linerReader) ReadLine() (string, error) {
	line, err := r.state.Prompt(r.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return line, ErrInterrupt
	}
	return line, err
}

func (r *linerReader) AddHistory(line string) error {
	r.state.AppendHistory(line)
	return nil
}

func (r *linerReader) Close() error {
	var herr error
	if r.historyFile != "" {
		f, err := os.Create(r.historyFile)
		if err == nil {
			_, herr = r.state.WriteHistory(f)
			_ = f.Close()
		} else {
			herr = err
		}
	}
	if err := r.state.Close(); err != nil {
		return err
	}
	if herr != nil {
		return fmt.Errorf("write history: %w", herr)
	}
	return nil
}
