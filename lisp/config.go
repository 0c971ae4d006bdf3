package lisp

import (
	"io"
	"log/slog"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) *LVal

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing the call stack height to exceed n.  A value of
// zero removes the limit.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) *LVal {
		if n < 0 {
			return Errorf("negative stack height: %d", n)
		}
		env.Runtime.Stack.MaxHeight = n
		return Nil()
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Reader = r
		return Nil()
	}
}

// WithStdout returns a Config that makes environments write program output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stdout = w
		return Nil()
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stderr = w
		return Nil()
	}
}

// WithLogger returns a Config that makes environments log evaluation events
// to logger instead of slog.Default().
func WithLogger(logger *slog.Logger) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Logger = logger
		return Nil()
	}
}
