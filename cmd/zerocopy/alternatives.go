package main

import (
	"fmt"
	"strings"

	"github.com/clarete/zerocopy"
	"github.com/pkg/errors"
)

// textual maps the output of a parser to a string, so alternatives
// of different kinds can share a choice
type textual[O any] struct {
	p  zerocopy.Parser[rune, O]
	fn func(O) string
}

func (t textual[O]) Parse(c *zerocopy.Cursor[rune], m zerocopy.Mode) (string, error) {
	out, err := t.p.Parse(c, m)
	if err != nil {
		return "", err
	}
	return zerocopy.Bind(m, func() string { return t.fn(out) }), nil
}

func (t textual[O]) String() string { return fmt.Sprint(t.p) }

func fromText(t zerocopy.Text) string { return string(t) }
func fromRune(r rune) string           { return string(r) }
func fromUnit(zerocopy.Unit) string    { return "" }

// parseAlternative reads one alternative from the command line.  The
// accepted forms are `just:TEXT`, `one:CHARS`, `none:CHARS`, `any`,
// `end` and `empty`.
func parseAlternative(arg string) (zerocopy.Parser[rune, string], error) {
	kind, value, hasValue := strings.Cut(arg, ":")
	switch kind {
	case "just":
		if !hasValue {
			return nil, errors.Errorf("alternative `%s` needs text", arg)
		}
		return textual[zerocopy.Text]{zerocopy.Just[rune](zerocopy.Text(value)), fromText}, nil
	case "one":
		if !hasValue {
			return nil, errors.Errorf("alternative `%s` needs characters", arg)
		}
		return textual[rune]{zerocopy.OneOf[rune](zerocopy.Text(value)), fromRune}, nil
	case "none":
		if !hasValue {
			return nil, errors.Errorf("alternative `%s` needs characters", arg)
		}
		return textual[rune]{zerocopy.NoneOf[rune](zerocopy.Text(value)), fromRune}, nil
	}
	if hasValue {
		return nil, errors.Errorf("alternative `%s` takes no value", kind)
	}
	switch kind {
	case "any":
		return textual[rune]{zerocopy.Any[rune](), fromRune}, nil
	case "end":
		return textual[zerocopy.Unit]{zerocopy.End[rune](), fromUnit}, nil
	case "empty":
		return textual[zerocopy.Unit]{zerocopy.Empty[rune](), fromUnit}, nil
	default:
		return nil, errors.Errorf("unknown alternative `%s`", kind)
	}
}

// buildChoice turns the command line alternatives into an ordered
// choice, keeping the order they were given in
func buildChoice(args []string) (zerocopy.ChoiceParser[rune, string], error) {
	alts := make([]zerocopy.Parser[rune, string], 0, len(args))
	for _, arg := range args {
		alt, err := parseAlternative(arg)
		if err != nil {
			return zerocopy.ChoiceParser[rune, string]{}, err
		}
		alts = append(alts, alt)
	}
	if len(alts) == 0 {
		return zerocopy.ChoiceParser[rune, string]{}, errors.New("no alternatives informed")
	}
	return zerocopy.Choice(alts...), nil
}
