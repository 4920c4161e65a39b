package zerocopy

import "unicode/utf8"

// Input is a random-access source of tokens.  It's never modified
// while a parse is running, and it's only ever read through a
// Cursor, so the same input can back any number of cursors.
type Input[T any] interface {
	// Next returns the token at `offset` and the offset of the
	// token that follows it.  When there's no token at `offset`,
	// `ok` is false and `next` equals `offset`.
	Next(offset int) (tok T, next int, ok bool)

	// Len returns the size of the input in offset units
	Len() int
}

// SliceInput exposes the elements of a slice as tokens.  Offsets
// are slice indexes.
type SliceInput[T any] struct {
	data []T
}

func NewSliceInput[T any](data []T) *SliceInput[T] {
	return &SliceInput[T]{data: data}
}

func (in *SliceInput[T]) Next(offset int) (T, int, bool) {
	if offset < 0 || offset >= len(in.data) {
		var zero T
		return zero, offset, false
	}
	return in.data[offset], offset + 1, true
}

func (in *SliceInput[T]) Len() int { return len(in.data) }

// Slice returns the elements covered by `r` without copying them
func (in *SliceInput[T]) Slice(r Range) []T {
	return in.data[r.Start:r.End]
}

// StringInput reads runes straight out of a string.  Offsets are
// byte offsets, so a rune spans as many offset units as its UTF-8
// encoding needs.
type StringInput struct {
	data string
}

func NewStringInput(data string) *StringInput {
	return &StringInput{data: data}
}

func (in *StringInput) Next(offset int) (rune, int, bool) {
	if offset < 0 || offset >= len(in.data) {
		return 0, offset, false
	}
	if r := in.data[offset]; r < utf8.RuneSelf {
		return rune(r), offset + 1, true
	}
	r, size := utf8.DecodeRuneInString(in.data[offset:])
	return r, offset + size, true
}

func (in *StringInput) Len() int { return len(in.data) }

// Slice returns the text covered by `r`.  Go strings are immutable,
// so this never copies.
func (in *StringInput) Slice(r Range) string {
	return in.data[r.Start:r.End]
}

// BytesInput exposes each byte as a token
type BytesInput struct {
	data []byte
}

func NewBytesInput(data []byte) *BytesInput {
	return &BytesInput{data: data}
}

func (in *BytesInput) Next(offset int) (byte, int, bool) {
	if offset < 0 || offset >= len(in.data) {
		return 0, offset, false
	}
	return in.data[offset], offset + 1, true
}

func (in *BytesInput) Len() int { return len(in.data) }

// Slice returns a view of the bytes covered by `r`.  The caller
// must not modify it.
func (in *BytesInput) Slice(r Range) []byte {
	return in.data[r.Start:r.End]
}
