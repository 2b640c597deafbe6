package boolexpr

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatch(t *testing.T, expression string, c Collection) bool {
	t.Helper()
	m, err := Parse(expression)
	require.NoError(t, err)
	got, err := m.Evaluate(c)
	require.NoError(t, err)
	return got
}

func TestMatcher_IdentifierPassthrough(t *testing.T) {
	collection := NewSet("foo", "with spaces?no", "übung")

	for _, name := range []string{"foo", "bar", "übung", "baz-2"} {
		want, err := collection.Contains(name)
		require.NoError(t, err)
		require.Equal(t, want, mustMatch(t, name, collection), "identifier %q", name)
	}
}

func TestMatcher_Precedence(t *testing.T) {
	tests := []struct {
		expression string
		present    []string
		want       bool
	}{
		{"a or b and c", []string{"a"}, true},
		{"a or b and c", []string{"b"}, false},
		{"a or b and c", []string{"b", "c"}, true},
		{"(a or b) and c", []string{"a"}, false},
		{"(a or b) and c", []string{"a", "c"}, true},
		{"not a and b", []string{"b"}, true},
		{"not a and b", []string{"a", "b"}, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.expression, tt.present), func(t *testing.T) {
			require.Equal(t, tt.want, mustMatch(t, tt.expression, NewSet(tt.present...)))
		})
	}
}

// subsets of {a, b} exercise every truth assignment of two identifiers.
var twoVarCollections = []Set{
	NewSet(),
	NewSet("a"),
	NewSet("b"),
	NewSet("a", "b"),
}

func TestMatcher_DoubleNegation(t *testing.T) {
	for _, expression := range []string{"a", "a and b", "a or b", "not a"} {
		for _, c := range twoVarCollections {
			plain := mustMatch(t, expression, c)
			doubled := mustMatch(t, "not not ("+expression+")", c)
			require.Equal(t, plain, doubled, "expression %q against %v", expression, c)
		}
	}
}

func TestMatcher_DeMorgan(t *testing.T) {
	for _, c := range twoVarCollections {
		require.Equal(t,
			mustMatch(t, "not (a and b)", c),
			mustMatch(t, "not a or not b", c),
			"collection %v", c)
		require.Equal(t,
			mustMatch(t, "not (a or b)", c),
			mustMatch(t, "not a and not b", c),
			"collection %v", c)
	}
}

// trippingCollection errors on any membership test outside the given
// results, catching evaluations that should have been short-circuited
// away.
func trippingCollection(results map[string]bool) ContainsFunc {
	return func(element string) (bool, error) {
		result, ok := results[element]
		if !ok {
			return false, fmt.Errorf("membership test ran for forbidden identifier %q", element)
		}
		return result, nil
	}
}

func TestMatcher_ShortCircuit(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		results    map[string]bool
		want       bool
	}{
		{
			name:       "false and-operand skips the right side",
			expression: "stop and boom",
			results:    map[string]bool{"stop": false},
			want:       false,
		},
		{
			name:       "true or-operand skips the right side",
			expression: "go or boom",
			results:    map[string]bool{"go": true},
			want:       true,
		},
		{
			name:       "nested group short-circuits too",
			expression: "a and (b or boom)",
			results:    map[string]bool{"a": true, "b": true},
			want:       true,
		},
		{
			name:       "chain stops at the first decider",
			expression: "a or b or boom",
			results:    map[string]bool{"a": false, "b": true},
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.expression)
			require.NoError(t, err)

			got, err := m.Evaluate(trippingCollection(tt.results))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_CollectionErrorPassthrough(t *testing.T) {
	sentinel := errors.New("backend unavailable")
	failing := ContainsFunc(func(string) (bool, error) {
		return false, sentinel
	})

	m, err := Parse("foo and bar")
	require.NoError(t, err)

	_, err = m.Evaluate(failing)
	require.ErrorIs(t, err, sentinel)
	// Passed through unchanged, not wrapped.
	require.Equal(t, sentinel, err)
}

func TestMatcher_EndToEnd(t *testing.T) {
	m, err := Parse("foo or (bar and baz)")
	require.NoError(t, err)

	tests := []struct {
		name       string
		collection Collection
		want       bool
	}{
		{"terms slice with foo", Terms{"foo"}, true},
		{"set with only bar", NewSet("bar"), false},
		{"set with bar and baz", NewSet("bar", "baz"), true},
		{"substring containment", Substring("barbbbaz"), true},
		{"substring without a match", Substring("quux"), false},
		{"map keys", Keys[int]{"foo": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Evaluate(tt.collection)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_Builtins(t *testing.T) {
	tests := []struct {
		expression string
		collection Collection
		want       bool
	}{
		{"foo or empty()", NewSet("foo"), true},
		{"foo or empty()", NewSet(), true},
		{"foo or empty()", NewSet("bar"), false},
		{"empty()", Terms{}, true},
		{"empty()", Terms{"x"}, false},
		{"not empty()", Substring("abc"), true},
		{"anything()", NewSet(), true},
		{"anything() and foo", NewSet("bar"), false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.expression, tt.collection), func(t *testing.T) {
			m, err := Parse(tt.expression)
			require.NoError(t, err)
			got, err := m.Evaluate(tt.collection)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_EmptyNeedsEmptier(t *testing.T) {
	m, err := Parse("empty()")
	require.NoError(t, err)

	membershipOnly := ContainsFunc(func(string) (bool, error) { return false, nil })
	_, err = m.Evaluate(membershipOnly)

	var collErr *CollectionError
	require.ErrorAs(t, err, &collErr)
	require.Equal(t, "empty", collErr.Op)
}

func TestParse_Errors(t *testing.T) {
	for _, expression := range []string{"", "foo and", "(foo", "foo bar"} {
		t.Run(fmt.Sprintf("%q", expression), func(t *testing.T) {
			m, err := Parse(expression)
			require.Nil(t, m)

			var synErr *SyntaxError
			require.ErrorAs(t, err, &synErr)
		})
	}
}

func TestMatcher_String(t *testing.T) {
	m, err := Parse("foo   or ((bar and baz))")
	require.NoError(t, err)

	require.Equal(t, `Matcher("foo or bar and baz")`, m.String())
	require.Equal(t, "foo   or ((bar and baz))", m.Expression())
	require.NotNil(t, m.Root())
}

func TestMatcher_ConcurrentEvaluate(t *testing.T) {
	m, err := Parse("foo or (bar and baz)")
	require.NoError(t, err)

	collections := []Collection{
		NewSet("foo"),
		NewSet("bar", "baz"),
		NewSet("qux"),
		Substring("barbbbaz"),
	}
	wants := []bool{true, true, false, true}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := m.Evaluate(collections[i%len(collections)])
			assert.NoError(t, err)
			assert.Equal(t, wants[i%len(wants)], got)
		}(i)
	}
	wg.Wait()
}
