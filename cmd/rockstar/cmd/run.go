package cmd

import (
	"context"
	"fmt"
	"os"

	cerrors "github.com/rockstar-lang/rockstar/internal/errors"
	interperrors "github.com/rockstar-lang/rockstar/internal/interp/errors"
	"github.com/rockstar-lang/rockstar/pkg/rockstar"
	"github.com/spf13/cobra"
)

// defaultScript is the file run when no path is given on the command
// line, per the teacher's own convention of falling back to a
// well-known demo file.
const defaultScript = "demo.rock"

// runScript resolves the script path (the given argument, or demo.rock
// in the current directory if none was given), runs it, and reports any
// tokenization or runtime diagnostic with its source line.
func runScript(_ *cobra.Command, args []string) error {
	path := defaultScript
	if len(args) == 1 {
		path = args[0]
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Running %s\n", path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	engine := rockstar.New()
	_, err = engine.RunString(context.Background(), string(source))
	if err != nil {
		reportError(err, string(source), path)
		return fmt.Errorf("execution failed")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Completed %s\n", path)
	}
	return nil
}

// reportError formats a tokenization or runtime error with its source
// line, the same CompilerError presentation the teacher uses for its
// own diagnostics.
func reportError(err error, source, file string) {
	line := 0
	if rtErr, ok := err.(*interperrors.InterpreterError); ok {
		line = rtErr.Line
	}
	ce := cerrors.NewCompilerError(line, err.Error(), source, file)
	fmt.Fprintln(os.Stderr, ce.Format(false))
}
