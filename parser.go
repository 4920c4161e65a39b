package zerocopy

// Parser is implemented by every combinator.  `Parse` reads tokens
// from the cursor and returns either an output shaped by the mode
// or an error.  Implementations hold configuration only: they must
// not keep state between calls, so a single value can be used by
// any number of parses, concurrently.
//
// A failing parser may leave the cursor anywhere past where it
// started.  Callers that need the position restored must save it
// before the call, which is what Attempt does.
type Parser[T, O any] interface {
	Parse(c *Cursor[T], m Mode) (O, error)
}

// ParserFunc is the signature of a parser function.  A closure fits
// in just right wherever a combinator doesn't deserve its own type.
type ParserFunc[T, O any] func(c *Cursor[T], m Mode) (O, error)

func (fn ParserFunc[T, O]) Parse(c *Cursor[T], m Mode) (O, error) {
	return fn(c, m)
}

// Attempt runs `p` and puts the cursor back where it was if `p`
// fails.  Combinators that call other combinators go through it so
// a failure never leaks a half consumed input to whoever tries next.
func Attempt[T, O any](c *Cursor[T], m Mode, p Parser[T, O]) (O, error) {
	cp := c.Save()
	out, err := p.Parse(c, m)
	if err != nil {
		c.Rewind(cp)
	}
	return out, err
}
