package boolexpr

import "fmt"

// LexError reports input that cannot form any valid token. With the
// grammar as shipped every non-whitespace, non-parenthesis byte is
// identifier-legal, so this only occurs if the identifier alphabet is
// narrowed.
type LexError struct {
	// Pos is the byte offset of the offending input.
	Pos int

	// Fragment is the offending piece of input.
	Fragment string

	// Message is the human-readable error description.
	Message string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s: %q", e.Pos, e.Message, e.Fragment)
}

// SyntaxError reports a token stream that does not match the grammar.
// Parsing aborts at the first syntax error; there is no recovery.
type SyntaxError struct {
	// Pos is the byte offset of the token where parsing failed.
	Pos int

	// Expected describes what the grammar allowed at this point.
	// Empty when Message carries the whole diagnosis.
	Expected string

	// Found describes the token actually present.
	Found string

	// Message is a free-form diagnosis used when the error is not an
	// expected-vs-found mismatch.
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("syntax error at position %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
	}
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Message)
}

// CollectionError represents a failure of the caller-supplied
// collection. Errors returned by a Collection's own methods propagate
// through evaluation unchanged; the evaluator itself only mints a
// CollectionError when empty() is used against a collection that does
// not support emptiness checks.
type CollectionError struct {
	// Op is the operation that failed, e.g. "empty".
	Op string

	// Message is the human-readable error description.
	Message string
}

// Error implements the error interface.
func (e *CollectionError) Error() string {
	return fmt.Sprintf("collection error in %s: %s", e.Op, e.Message)
}
