package zerocopy

import "fmt"

// EndParser matches the end of the input.  It never consumes
// anything.
type EndParser[T any] struct{}

// End creates a parser that only succeeds when there's no input left
func End[T any]() EndParser[T] { return EndParser[T]{} }

func (p EndParser[T]) Parse(c *Cursor[T], m Mode) (Unit, error) {
	at := c.Offset()
	if _, _, ok := c.input.Next(at); ok {
		return Unit{}, c.Fail(at, at, p)
	}
	return Bind(m, unit), nil
}

func (EndParser[T]) String() string { return "end of input" }

// EmptyParser matches nothing and always succeeds
type EmptyParser[T any] struct{}

// Empty creates a parser that succeeds without looking at the input
func Empty[T any]() EmptyParser[T] { return EmptyParser[T]{} }

func (EmptyParser[T]) Parse(c *Cursor[T], m Mode) (Unit, error) {
	return Bind(m, unit), nil
}

func (EmptyParser[T]) String() string { return "nothing" }

func unit() Unit { return Unit{} }

// JustParser matches the tokens of a pattern, in order
type JustParser[T comparable, S Seq[T]] struct {
	seq S
}

// Just creates a parser that matches each token of `seq` against
// the input.  Its output is the pattern itself, not the consumed
// tokens, so matching never copies input.
//
// On a mismatch the cursor is left wherever the mismatch happened.
// Use Attempt, or a combinator that does, to restore it.
func Just[T comparable, S Seq[T]](seq S) JustParser[T, S] {
	return JustParser[T, S]{seq: seq}
}

func (p JustParser[T, S]) Parse(c *Cursor[T], m Mode) (S, error) {
	start := c.Offset()
	for want := range p.seq.Iter() {
		at, tok, ok := c.Next()
		if !ok || tok != want {
			var zero S
			return zero, c.Fail(start, at, p)
		}
	}
	return Bind(m, p.output), nil
}

// output returns a copy of the pattern when it knows how to clone
// itself, or the pattern value otherwise
func (p JustParser[T, S]) output() S {
	if cl, ok := any(p.seq).(interface{ Clone() S }); ok {
		return cl.Clone()
	}
	return p.seq
}

func (p JustParser[T, S]) String() string { return describe(p.seq) }

// OneOfParser matches a single token that belongs to a set
type OneOfParser[T comparable] struct {
	set Seq[T]
}

// OneOf creates a parser that consumes one token if it's equal to
// any of the tokens in `set`
func OneOf[T comparable](set Seq[T]) OneOfParser[T] {
	return OneOfParser[T]{set: set}
}

func (p OneOfParser[T]) Parse(c *Cursor[T], m Mode) (T, error) {
	at, tok, ok := c.Next()
	if !ok || !contains(p.set, tok) {
		c.offset = at
		var zero T
		return zero, c.Fail(at, at, p)
	}
	return Bind(m, func() T { return tok }), nil
}

func (p OneOfParser[T]) String() string { return "one of " + describe(p.set) }

// NoneOfParser matches a single token that doesn't belong to a set
type NoneOfParser[T comparable] struct {
	set Seq[T]
}

// NoneOf creates a parser that consumes one token as long as it
// isn't equal to any of the tokens in `set`.  It fails on end of
// input.
func NoneOf[T comparable](set Seq[T]) NoneOfParser[T] {
	return NoneOfParser[T]{set: set}
}

func (p NoneOfParser[T]) Parse(c *Cursor[T], m Mode) (T, error) {
	at, tok, ok := c.Next()
	if !ok || contains(p.set, tok) {
		c.offset = at
		var zero T
		return zero, c.Fail(at, at, p)
	}
	return Bind(m, func() T { return tok }), nil
}

func (p NoneOfParser[T]) String() string { return "none of " + describe(p.set) }

// FilterParser matches a single token accepted by a predicate
type FilterParser[T any] struct {
	name string
	pred func(T) bool
}

// Filter creates a parser that consumes one token if `pred` holds
// for it.  `pred` must be a pure function of the token.
func Filter[T any](pred func(T) bool) FilterParser[T] {
	return FilterParser[T]{name: "token matching filter", pred: pred}
}

// FilterNamed is Filter with a description of what `pred` accepts,
// which is what error messages show as expected
func FilterNamed[T any](name string, pred func(T) bool) FilterParser[T] {
	return FilterParser[T]{name: name, pred: pred}
}

// Any creates a parser that consumes whatever token is under the
// cursor and only fails on end of input
func Any[T any]() FilterParser[T] {
	return FilterParser[T]{name: "any token", pred: anyToken[T]}
}

func anyToken[T any](T) bool { return true }

func (p FilterParser[T]) Parse(c *Cursor[T], m Mode) (T, error) {
	at, tok, ok := c.Next()
	if !ok || !p.pred(tok) {
		c.offset = at
		var zero T
		return zero, c.Fail(at, at, p)
	}
	return Bind(m, func() T { return tok }), nil
}

func (p FilterParser[T]) String() string { return p.name }

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
