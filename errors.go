package zerocopy

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoMatch is the only kind of failure combinators produce: the
// input under the cursor isn't what the combinator wanted.  Errors
// created by the detailed factory unwrap to it, so `errors.Is(err,
// ErrNoMatch)` works regardless of the factory in use.
var ErrNoMatch = errors.New("no match")

// Failure is what's known about a mismatch at the moment it
// happens.  Error factories decide how much of it ends up in the
// error value.
type Failure[T any] struct {
	// Range goes from where the failing match started to right
	// after the offending token
	Range Range

	// Expected describes what the combinator wanted to find.  It's
	// a Stringer so it's only rendered when a factory needs it.
	Expected fmt.Stringer

	// Found is the offending token.  It's the zero value when EOF
	// is true.
	Found T

	// EOF is true when the input ended before the match did
	EOF bool
}

// ErrorFactory creates the error returned by a combinator that
// failed to match
type ErrorFactory[T any] func(Failure[T]) error

// BareErrors returns a factory that discards everything about a
// failure and always returns ErrNoMatch.  It's the cheapest option
// when the caller only cares whether the input matched.
func BareErrors[T any]() ErrorFactory[T] {
	return func(Failure[T]) error { return ErrNoMatch }
}

// DetailedErrors returns the default factory, which creates *Error
// values carrying the position, the expected descriptions and the
// offending token.
func DetailedErrors[T any]() ErrorFactory[T] {
	return detailedError[T]
}

func detailedError[T any](f Failure[T]) error {
	e := &Error{
		Range:    f.Range,
		Expected: expectationsOf(f.Expected),
		EOF:      f.EOF,
	}
	if !f.EOF {
		e.Found = formatToken(f.Found)
	}
	return e
}

// Error is a mismatch with enough context to tell the user what
// went wrong and where
type Error struct {
	Range    Range
	Expected []string
	Found    string
	EOF      bool
}

// Error returns the human readable representation of a mismatch
func (e *Error) Error() string {
	found := "EOF"
	if !e.EOF {
		found = "`" + e.Found + "`"
	}
	exp := strings.Join(e.Expected, ", ")
	if exp == "" {
		return fmt.Sprintf("Unexpected %s @ %s", found, e.Range)
	}
	return fmt.Sprintf("Expected %s but got %s @ %s", exp, found, e.Range)
}

func (e *Error) Unwrap() error { return ErrNoMatch }

// IsNoMatch returns true if `err` was produced by a combinator that
// failed to match its input
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// expecter is implemented by descriptions that carry more than one
// expected item, like the ones Choice builds from its alternatives
type expecter interface {
	expectations() []string
}

func expectationsOf(s fmt.Stringer) []string {
	if s == nil {
		return nil
	}
	if e, ok := s.(expecter); ok {
		return e.expectations()
	}
	return []string{s.String()}
}

// armErrors describes a failed ordered choice as the union of what
// each of its alternatives expected, in the order they were tried
type armErrors []error

func (a armErrors) expectations() []string {
	var (
		expected []string
		seen     = map[string]struct{}{}
	)
	for _, err := range a {
		var e *Error
		if !errors.As(err, &e) {
			continue
		}
		for _, exp := range e.Expected {
			if _, ok := seen[exp]; ok {
				continue
			}
			seen[exp] = struct{}{}
			expected = append(expected, exp)
		}
	}
	return expected
}

func (a armErrors) String() string {
	return strings.Join(a.expectations(), ", ")
}

func formatToken(tok any) string {
	switch t := tok.(type) {
	case rune:
		return string(t)
	case byte:
		return string(rune(t))
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
