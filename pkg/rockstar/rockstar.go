// Package rockstar is the embeddable public API for running Rockstar
// programs: construct an Engine, point it at a file or an in-memory
// source string, and read back the program's final expression value
// together with whatever it printed.
package rockstar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	cerrors "github.com/rockstar-lang/rockstar/internal/errors"
	"github.com/rockstar-lang/rockstar/internal/interp"
	interperrors "github.com/rockstar-lang/rockstar/internal/interp/errors"
	"github.com/rockstar-lang/rockstar/internal/lexer"
)

// Engine runs Rockstar programs with a configurable output sink.
type Engine struct {
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithStdout redirects a program's "Shout"/"Whisper" output.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithStderr redirects diagnostic output.
func WithStderr(w io.Writer) Option {
	return func(e *Engine) { e.stderr = w }
}

// New creates an Engine defaulting to os.Stdout/os.Stderr.
func New(opts ...Option) *Engine {
	e := &Engine{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is what a completed Rockstar program produced: the value of its
// final "Give back" (if one ran at the top level) or the default Null
// value otherwise, and everything it printed.
type Result struct {
	Value  interp.Value
	Output string
}

// Run tokenizes and executes the Rockstar program at path.
func (e *Engine) Run(ctx context.Context, path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return e.RunString(ctx, string(source))
}

// RunString tokenizes and executes a Rockstar program from source text.
func (e *Engine) RunString(ctx context.Context, source string) (result *Result, err error) {
	l := lexer.New(source)
	if errs := l.Errors(); len(errs) > 0 {
		compilerErrs := make([]*cerrors.CompilerError, len(errs))
		for i, e := range errs {
			compilerErrs[i] = cerrors.NewCompilerError(e.Line, e.Message, source, "")
		}
		return nil, interperrors.NewTokenizationErrorf(errs[0].Line, "%s", cerrors.FormatErrors(compilerErrs, false))
	}

	var buf bytes.Buffer
	out := io.MultiWriter(&buf, e.stdout)

	type outcome struct {
		val interp.Value
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if rtErr, ok := r.(*interperrors.InterpreterError); ok {
					done <- outcome{err: rtErr}
					return
				}
				done <- outcome{err: fmt.Errorf("panic during evaluation: %v", r)}
				return
			}
		}()
		it := interp.New(l.Tokens(), out)
		done <- outcome{val: it.Eval()}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return &Result{Value: res.val, Output: buf.String()}, nil
	}
}
