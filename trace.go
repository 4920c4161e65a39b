package zerocopy

import "github.com/golang/glog"

// TracedParser logs each run of the parser it wraps
type TracedParser[T, O any] struct {
	name string
	p    Parser[T, O]
}

// Traced wraps `p` so that every call is logged at verbosity 2,
// along with where it started, where it stopped and how it ended.
// It doesn't change what `p` does in any way.
func Traced[T, O any](name string, p Parser[T, O]) TracedParser[T, O] {
	return TracedParser[T, O]{name: name, p: p}
}

func (t TracedParser[T, O]) Parse(c *Cursor[T], m Mode) (O, error) {
	v := glog.V(2)
	start := c.Offset()
	if v {
		v.Infof("%s: enter @ %d (%s)", t.name, start, m)
	}
	out, err := t.p.Parse(c, m)
	if v {
		if err != nil {
			v.Infof("%s: fail @ %s: %v", t.name, NewRange(start, c.Offset()), err)
		} else {
			v.Infof("%s: match @ %s", t.name, NewRange(start, c.Offset()))
		}
	}
	return out, err
}

func (t TracedParser[T, O]) String() string { return describe(t.p) }
