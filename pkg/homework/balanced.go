// Package homework holds the chapter 1.3 exercises that are built on top of
// the containers packages.
package homework

import (
	"golang.org/x/exp/maps"

	"github.com/algokit/algokit/pkg/containers/arraystack"
)

// DefaultPairs maps every closing bracket to its opening bracket.
var DefaultPairs = map[rune]rune{
	']': '[',
	')': '(',
	'}': '{',
}

var defaultMatcher = NewMatcher(DefaultPairs)

// Balanced reports whether every bracket in input is closed in the right
// order (exercise 1.3.5). Only brackets are allowed, any other rune makes
// the input unbalanced. The empty input is balanced.
func Balanced(input string) bool {
	return defaultMatcher.Balanced(input)
}

// Matcher checks bracket balance against a table of closing to opening
// runes.
type Matcher struct {
	closers         map[rune]rune
	openers         map[rune]struct{}
	initialCapacity int
}

type MatcherOption func(*Matcher)

// WithInitialCapacity sets the capacity of the stack each check starts
// with.
func WithInitialCapacity(capacity int) MatcherOption {
	return func(m *Matcher) {
		m.initialCapacity = capacity
	}
}

// NewMatcher returns a Matcher for pairs, which maps each closing rune to its
// opening rune. pairs is copied.
func NewMatcher(pairs map[rune]rune, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		closers: maps.Clone(pairs),
		openers: make(map[rune]struct{}, len(pairs)),
	}
	for _, opening := range pairs {
		m.openers[opening] = struct{}{}
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Balanced reports whether input is a balanced sequence of the matcher's
// brackets.
func (m *Matcher) Balanced(input string) bool {
	opened := arraystack.New[rune](m.initialCapacity)

	for _, c := range input {
		if _, ok := m.openers[c]; ok {
			opened.Push(c)
			continue
		}

		expected, ok := m.closers[c]
		if !ok {
			return false
		}

		o, ok := opened.Pop()
		if !ok || o != expected {
			return false
		}
	}

	return opened.IsEmpty()
}
