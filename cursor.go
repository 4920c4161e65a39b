package zerocopy

import "fmt"

// Cursor is a position within an Input.  It's the only mutable
// state of a parse: combinators read tokens through it and save or
// rewind it to backtrack.  A cursor must be owned by a single parse
// at a time.
type Cursor[T any] struct {
	input  Input[T]
	offset int
	errs   ErrorFactory[T]
}

// Checkpoint is a saved cursor position.  It's only meaningful for
// the cursor that produced it (or copies of it).
type Checkpoint struct {
	offset int
}

// Offset returns the position the checkpoint points at
func (cp Checkpoint) Offset() int { return cp.offset }

// NewCursor creates a cursor positioned at the beginning of `in`.
// Failures are reported with the detailed error factory until
// `WithErrors` says otherwise.
func NewCursor[T any](in Input[T]) *Cursor[T] {
	return &Cursor[T]{input: in}
}

// WithErrors replaces the factory used to create errors at the
// point of mismatch.  It returns the cursor itself so it can be
// chained right after `NewCursor`.
func (c *Cursor[T]) WithErrors(f ErrorFactory[T]) *Cursor[T] {
	c.errs = f
	return c
}

// Input returns the input the cursor reads from
func (c *Cursor[T]) Input() Input[T] { return c.input }

// Offset returns the current position of the cursor
func (c *Cursor[T]) Offset() int { return c.offset }

// AtEnd returns true when there are no more tokens to read
func (c *Cursor[T]) AtEnd() bool {
	_, _, ok := c.input.Next(c.offset)
	return !ok
}

// Remaining returns how many offset units are left in the input
func (c *Cursor[T]) Remaining() int {
	return c.input.Len() - c.offset
}

// Next returns the offset it read from and the token under the
// cursor, and advances the cursor past that token.  On end of input
// `ok` is false and the cursor doesn't move.
func (c *Cursor[T]) Next() (at int, tok T, ok bool) {
	var next int
	at = c.offset
	tok, next, ok = c.input.Next(at)
	c.offset = next
	return at, tok, ok
}

// Peek returns the token under the cursor without moving it
func (c *Cursor[T]) Peek() (T, bool) {
	tok, _, ok := c.input.Next(c.offset)
	return tok, ok
}

// Save takes a snapshot of the cursor position
func (c *Cursor[T]) Save() Checkpoint {
	return Checkpoint{offset: c.offset}
}

// Rewind moves the cursor back (or forward) to exactly where it was
// when `cp` was saved.  It doesn't touch the input.
func (c *Cursor[T]) Rewind(cp Checkpoint) {
	c.offset = cp.offset
}

// Fail creates the error for a match that started at `start` and
// went wrong at the token under offset `at`.  `expected` describes
// what the caller wanted to see there and is only rendered if the
// error factory asks for it.
func (c *Cursor[T]) Fail(start, at int, expected fmt.Stringer) error {
	tok, next, ok := c.input.Next(at)
	errs := c.errs
	if errs == nil {
		errs = detailedError[T]
	}
	return errs(Failure[T]{
		Range:    NewRange(start, next),
		Expected: expected,
		Found:    tok,
		EOF:      !ok,
	})
}
