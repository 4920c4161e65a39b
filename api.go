package zerocopy

// Run creates a cursor over `in` and runs `p` on it under mode `m`.
// It returns the output, the offset where the cursor stopped and
// the error, if any.  A nil `cfg` means `NewConfig()`.
//
// Settings used:
//
//   - errors.detailed: pick DetailedErrors or BareErrors
//   - parse.require_end: fail unless `p` consumes the whole input
//   - trace.enabled: wrap `p` with Traced
func Run[T, O any](p Parser[T, O], in Input[T], m Mode, cfg *Config) (O, int, error) {
	var zero O
	if cfg == nil {
		cfg = NewConfig()
	}
	c := NewCursor(in)
	if !cfg.GetBool("errors.detailed") {
		c.WithErrors(BareErrors[T]())
	}
	if cfg.GetBool("trace.enabled") {
		p = Traced("parse", p)
	}
	out, err := p.Parse(c, m)
	if err != nil {
		return zero, c.Offset(), err
	}
	if cfg.GetBool("parse.require_end") {
		if _, err := End[T]().Parse(c, m); err != nil {
			return zero, c.Offset(), err
		}
	}
	return out, c.Offset(), nil
}

// Parse runs `p` under Emit and returns its output
func Parse[T, O any](p Parser[T, O], in Input[T], cfg *Config) (O, int, error) {
	return Run(p, in, Emit, cfg)
}

// Validate runs `p` under Check.  Nothing is materialized, only
// the final offset and the error are returned.
func Validate[T, O any](p Parser[T, O], in Input[T], cfg *Config) (int, error) {
	_, offset, err := Run(p, in, Check, cfg)
	return offset, err
}

// Probe runs `p` under Check and only pays for building the output
// if the input matched.  Since both modes take the same path, the
// second run is guaranteed to succeed and stop at the same offset.
func Probe[T, O any](p Parser[T, O], in Input[T], cfg *Config) (O, int, error) {
	if offset, err := Validate(p, in, cfg); err != nil {
		var zero O
		return zero, offset, err
	}
	return Run(p, in, Emit, cfg)
}
