package lisp

import (
	"io"
	"log/slog"
	"os"
)

// Runtime is the state shared by every environment in a session.
type Runtime struct {
	Stack  *CallStack
	Reader Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// StandardRuntime returns a new Runtime that writes to the process's standard
// output streams and logs to the default slog.Logger.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stack:  &CallStack{MaxHeight: DefaultMaxStackHeight},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: slog.Default(),
	}
}
