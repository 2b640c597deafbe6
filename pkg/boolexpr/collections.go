package boolexpr

import "strings"

// Collection is the single capability the evaluator requires of the
// caller's data: answering whether an element is present. The error
// return exists purely for the caller's benefit; a non-nil error
// aborts evaluation and is handed back unchanged.
type Collection interface {
	Contains(element string) (bool, error)
}

// Emptier is the optional capability behind the empty() builtin.
// Collections that cannot answer it make empty() fail with a
// *CollectionError.
type Emptier interface {
	Empty() (bool, error)
}

// Set is an exact-match collection of elements.
type Set map[string]struct{}

// NewSet builds a Set from the given elements.
func NewSet(elements ...string) Set {
	s := make(Set, len(elements))
	for _, e := range elements {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports whether element is a member of the set.
func (s Set) Contains(element string) (bool, error) {
	_, ok := s[element]
	return ok, nil
}

// Empty reports whether the set has no members.
func (s Set) Empty() (bool, error) {
	return len(s) == 0, nil
}

// Terms adapts a slice of strings; membership is an exact-match scan.
type Terms []string

// Contains reports whether element equals one of the terms.
func (t Terms) Contains(element string) (bool, error) {
	for _, term := range t {
		if term == element {
			return true, nil
		}
	}
	return false, nil
}

// Empty reports whether there are no terms.
func (t Terms) Empty() (bool, error) {
	return len(t) == 0, nil
}

// Keys adapts any string-keyed map; membership is key presence.
type Keys[V any] map[string]V

// Contains reports whether element is a key of the map.
func (k Keys[V]) Contains(element string) (bool, error) {
	_, ok := k[element]
	return ok, nil
}

// Empty reports whether the map has no keys.
func (k Keys[V]) Empty() (bool, error) {
	return len(k) == 0, nil
}

// Substring adapts a plain string. Membership is substring
// containment, not element membership: the identifiers bar and baz are
// both "contained" in Substring("barbbbaz"). This is a deliberately
// different contract from the other adapters; pick it only when that
// is what you mean.
type Substring string

// Contains reports whether element occurs anywhere within the string.
func (s Substring) Contains(element string) (bool, error) {
	return strings.Contains(string(s), element), nil
}

// Empty reports whether the string is empty.
func (s Substring) Empty() (bool, error) {
	return s == "", nil
}

// ContainsFunc adapts a bare membership predicate. It provides
// membership only; expressions using empty() need a Collection that
// also implements Emptier.
type ContainsFunc func(element string) (bool, error)

// Contains invokes the predicate.
func (f ContainsFunc) Contains(element string) (bool, error) {
	return f(element)
}
