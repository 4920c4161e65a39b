package zerocopy

import "github.com/pkg/errors"

// Mode selects whether a combinator builds its output or just
// checks that the input matches.  Both modes walk through exactly
// the same steps; the only difference is that under Check nothing
// is materialized.
type Mode uint8

const (
	// Check validates the input and discards outputs
	Check Mode = iota

	// Emit validates the input and builds outputs
	Emit
)

// Unit is the output of combinators that have nothing to say
// besides succeeding
type Unit = struct{}

func (m Mode) String() string {
	switch m {
	case Check:
		return "check"
	case Emit:
		return "emit"
	default:
		return "unknown"
	}
}

// ParseMode reads the textual representation of a mode, as produced
// by `Mode.String`.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "check":
		return Check, nil
	case "emit":
		return Emit, nil
	default:
		return Check, errors.Errorf("unknown mode `%s`", s)
	}
}

// Bind produces the output of a combinator.  Under Emit, `f` is
// called exactly once and its value returned.  Under Check, `f` is
// never called and the zero value of `O` stands in for the output.
func Bind[O any](m Mode, f func() O) O {
	if m == Emit {
		return f()
	}
	var zero O
	return zero
}
