package zerocopy

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Seq is a pattern that can be walked token by token, as many times
// as needed.  Every call to Iter returns a fresh iterator that
// yields the tokens in the order they must appear in the input, and
// iterators never share state, so the same pattern can be matched
// by concurrent parses.
type Seq[T any] interface {
	Iter() iter.Seq[T]
}

// Single is a pattern made of exactly one token
type Single[T any] struct{ V T }

// One wraps a single token into a pattern
func One[T any](v T) Single[T] { return Single[T]{V: v} }

func (s Single[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(s.V)
	}
}

func (s Single[T]) String() string { return "`" + formatToken(s.V) + "`" }

// Tokens is a pattern made of a fixed collection of tokens
type Tokens[T any] []T

// Of builds a Tokens pattern out of its arguments
func Of[T any](vs ...T) Tokens[T] { return Tokens[T](vs) }

func (s Tokens[T]) Iter() iter.Seq[T] {
	return slices.Values(s)
}

// Clone returns a copy of the pattern that doesn't share its
// backing array
func (s Tokens[T]) Clone() Tokens[T] { return slices.Clone(s) }

func (s Tokens[T]) String() string {
	items := make([]string, len(s))
	for i, v := range s {
		items[i] = formatToken(v)
	}
	return "[" + strings.Join(items, " ") + "]"
}

// Text is a pattern made of the runes of a string.  The runes are
// decoded as the pattern is walked, nothing is copied.
type Text string

func (s Text) Iter() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range string(s) {
			if !yield(r) {
				return
			}
		}
	}
}

func (s Text) String() string { return strconv.Quote(string(s)) }

// Raw is a pattern made of the bytes of a string, meant to be
// matched against a BytesInput
type Raw string

func (s Raw) Iter() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

func (s Raw) String() string { return strconv.Quote(string(s)) }

// contains is the membership test shared by OneOf and NoneOf
func contains[T comparable](set Seq[T], tok T) bool {
	for v := range set.Iter() {
		if v == tok {
			return true
		}
	}
	return false
}
