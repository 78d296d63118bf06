// Package interp implements the Rockstar tree-walking evaluator.
//
// A program is tokenized once by internal/lexer, then handed to an
// Interpreter as a flat token stream. The interpreter groups that stream
// into lines, walks them one at a time, and maintains the runtime state
// needed along the way:
//   - A single flat variable environment per call frame, with read-only
//     fallback to the caller's frame and pronoun resolution ("it", "she",
//     "they", ...)
//   - A shared table of declared functions, each holding its raw body
//     tokens rather than a parsed AST
//   - Block bookkeeping for If/Else and While/Until, tracked by scanning
//     forward for the blank line that closes the innermost open block
//
// There is no bytecode, no optimizer pass, and no closures: a function
// call spins up a fresh Interpreter over the callee's captured tokens
// every time it is invoked.
//
// Example usage:
//
//	tokens := lexer.New(source).Tokens()
//	it := interp.New(tokens, os.Stdout)
//	result := it.Eval()
package interp
