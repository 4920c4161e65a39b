package zerocopy

import "strings"

// ChoiceParser is an ordered choice over alternatives that share
// the same output type
type ChoiceParser[T, O any] struct {
	alts []Parser[T, O]
}

// Choice walks through `alts` and returns the output of the first
// one to succeed, with the cursor wherever that alternative left
// it.  The cursor is put back where it started before each attempt,
// and if no alternative matches it's left exactly there.
//
// Alternatives with different output types have to be mapped into
// a common type before they get here.  Choice panics when called
// without alternatives.
func Choice[T, O any](alts ...Parser[T, O]) ChoiceParser[T, O] {
	if len(alts) == 0 {
		panic("zerocopy: Choice needs at least one alternative")
	}
	return ChoiceParser[T, O]{alts: alts}
}

func (p ChoiceParser[T, O]) Parse(c *Cursor[T], m Mode) (O, error) {
	var (
		zero  O
		errs  armErrors
		start = c.Save()
	)
	for _, alt := range p.alts {
		out, err := alt.Parse(c, m)
		if err == nil {
			return out, nil
		}
		c.Rewind(start)
		errs = append(errs, err)
	}
	return zero, c.Fail(start.offset, start.offset, errs)
}

// Len returns the number of alternatives
func (p ChoiceParser[T, O]) Len() int { return len(p.alts) }

func (p ChoiceParser[T, O]) String() string {
	items := make([]string, len(p.alts))
	for i, alt := range p.alts {
		items[i] = describe(alt)
	}
	return strings.Join(items, " / ")
}

// OrParser is the two alternatives version of ChoiceParser
type OrParser[T, O any] struct {
	a, b Parser[T, O]
}

// Or tries `a` and, if it fails, `b` from the same position.  It
// behaves exactly like a Choice of the two, without walking a slice.
func Or[T, O any](a, b Parser[T, O]) OrParser[T, O] {
	return OrParser[T, O]{a: a, b: b}
}

func (p OrParser[T, O]) Parse(c *Cursor[T], m Mode) (O, error) {
	start := c.Save()
	out, errA := p.a.Parse(c, m)
	if errA == nil {
		return out, nil
	}
	c.Rewind(start)
	out, errB := p.b.Parse(c, m)
	if errB == nil {
		return out, nil
	}
	c.Rewind(start)
	var zero O
	return zero, c.Fail(start.offset, start.offset, armErrors{errA, errB})
}

func (p OrParser[T, O]) String() string {
	return describe(p.a) + " / " + describe(p.b)
}
