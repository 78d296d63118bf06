// Package errors provides error formatting utilities for the Rockstar
// interpreter's command-line front end. It formats interpreter errors
// with source context and a line number — Rockstar diagnostics carry no
// column, since the tokenizer only tracks which line a token came from.
package errors

import (
	"fmt"
	"strings"
)

// CompilerError represents a single reportable error with source context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Line    int
}

// NewCompilerError creates a new CompilerError.
func NewCompilerError(line int, message, source, file string) *CompilerError {
	return &CompilerError{Line: line, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with its source line highlighted. If color is
// true, ANSI codes are used for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d\n", e.File, e.Line))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d\n", e.Line))
	}

	if line := e.sourceLine(e.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors formats multiple errors, one after another.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
