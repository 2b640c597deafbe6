// Package boolexpr evaluates a small boolean-expression language
// ("and", "or", "not", parentheses, bare identifiers) against any
// membership-testable collection.
//
// An expression is parsed once into an immutable Matcher and may then
// be evaluated against many different collections:
//
//	m, err := boolexpr.Parse("foo or (bar and baz)")
//	if err != nil {
//		// *LexError or *SyntaxError
//	}
//	ok, _ := m.Evaluate(boolexpr.NewSet("foo"))        // true
//	ok, _ = m.Evaluate(boolexpr.Terms{"bar"})          // false
//	ok, _ = m.Evaluate(boolexpr.Substring("barbbbaz")) // true
//
// Beyond identifiers, the language has two nullary builtins: empty()
// is true when the collection holds no elements, anything() is always
// true.
package boolexpr

import "fmt"

// Matcher couples one parsed expression tree with the evaluation
// logic. It holds no collection state: the same Matcher may be reused
// against any number of collections, including concurrently, since it
// is immutable after Parse.
type Matcher struct {
	expression string
	root       Node
}

// Parse tokenizes and parses the expression and returns a reusable
// Matcher. It fails with *LexError or *SyntaxError.
func Parse(expression string) (*Matcher, error) {
	tokens, err := NewLexer(expression).Tokenize()
	if err != nil {
		return nil, err
	}

	root, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	return &Matcher{expression: expression, root: root}, nil
}

// Evaluate tests the expression against the collection's membership
// predicate and returns the boolean result. The only errors it can
// return come from the collection itself, passed through unchanged,
// or a *CollectionError when empty() is used against a collection
// without emptiness support.
func (m *Matcher) Evaluate(c Collection) (bool, error) {
	return eval(m.root, c)
}

// Expression returns the original expression text passed to Parse.
func (m *Matcher) Expression() string {
	return m.expression
}

// Root returns the root of the parsed expression tree.
func (m *Matcher) Root() Node {
	return m.root
}

// String renders the Matcher with the parsed expression, normalized to
// minimal parentheses.
func (m *Matcher) String() string {
	return fmt.Sprintf("Matcher(%q)", m.root.String())
}
