package interp

import rterrors "github.com/rockstar-lang/rockstar/internal/interp/errors"

// RuntimeError is an alias for the categorized interpreter error type, so
// callers inside this package can write RuntimeError instead of the fully
// qualified import.
type RuntimeError = rterrors.InterpreterError

// newTokenizationErrorf has no call site here: by the time a token
// stream reaches this package it has already stitched successfully, so
// tokenization failures are raised by the lexer's own error type and
// wrapped via rterrors.NewTokenizationErrorf at the pkg/rockstar boundary
// instead.
var (
	newSyntaxErrorf     = rterrors.NewSyntaxErrorf
	newExpressionErrorf = rterrors.NewExpressionErrorf
	newTypeErrorf       = rterrors.NewTypeErrorf
	newBoundsErrorf     = rterrors.NewBoundsErrorf
	newArityErrorf      = rterrors.NewArityErrorf
)
