package zerocopy

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursorAt(input string, offset int) *Cursor[rune] {
	c := NewCursor[rune](NewStringInput(input))
	c.Rewind(Checkpoint{offset: offset})
	return c
}

func TestEnd(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		c := cursorAt("", 0)
		out, err := End[rune]().Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, Unit{}, out)
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("input left fails without consuming", func(t *testing.T) {
		c := cursorAt("x", 0)
		_, err := End[rune]().Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, 0, c.Offset())
		assert.Equal(t, "Expected end of input but got `x` @ 0..1", err.Error())
	})

	t.Run("succeeds iff the cursor is at the end", func(t *testing.T) {
		input := "abc"
		for offset := 0; offset <= len(input); offset++ {
			c := cursorAt(input, offset)
			_, err := End[rune]().Parse(c, Check)
			assert.Equal(t, offset == len(input), err == nil, "offset %d", offset)
			assert.Equal(t, offset, c.Offset())
		}
	})
}

func TestEmpty(t *testing.T) {
	for _, input := range []string{"", "a", "abc"} {
		for offset := 0; offset <= len(input); offset++ {
			c := cursorAt(input, offset)
			out, err := Empty[rune]().Parse(c, Emit)
			require.NoError(t, err)
			assert.Equal(t, Unit{}, out)
			assert.Equal(t, offset, c.Offset())
		}
	}
}

func TestJust(t *testing.T) {
	t.Run("literal prefix", func(t *testing.T) {
		c := cursorAt("abc", 0)
		out, err := Just[rune](Text("ab")).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, Text("ab"), out)
		assert.Equal(t, 2, c.Offset())
	})

	t.Run("mismatch on the second character", func(t *testing.T) {
		c := cursorAt("abc", 0)
		_, err := Just[rune](Text("ax")).Parse(c, Emit)
		require.Error(t, err)
		assert.True(t, IsNoMatch(err))

		want := &Error{
			Range:    NewRange(0, 2),
			Expected: []string{`"ax"`},
			Found:    "b",
		}
		if diff := cmp.Diff(want, err); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
		// the cursor isn't restored by Just itself
		assert.Equal(t, 2, c.Offset())
	})

	t.Run("input ends before the pattern", func(t *testing.T) {
		c := cursorAt("abc", 1)
		_, err := Just[rune](Text("bcd")).Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, "Expected \"bcd\" but got EOF @ 1..3", err.Error())
		assert.Equal(t, 3, c.Offset())
	})

	t.Run("wrapped in attempt the cursor is restored", func(t *testing.T) {
		c := cursorAt("abc", 0)
		_, err := Attempt[rune, Text](c, Emit, Just[rune](Text("abx")))
		require.Error(t, err)
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("empty pattern always matches", func(t *testing.T) {
		c := cursorAt("", 0)
		out, err := Just[rune](Text("")).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, Text(""), out)
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("single token pattern", func(t *testing.T) {
		c := cursorAt("é", 0)
		out, err := Just[rune](One('é')).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, One('é'), out)
		assert.Equal(t, 2, c.Offset())
	})

	t.Run("output is a copy of the pattern", func(t *testing.T) {
		pattern := Of("let", "x")
		p := Just[string](pattern)
		c := NewCursor[string](NewSliceInput([]string{"let", "x", "="}))

		out, err := p.Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, pattern, out)

		out[0] = "var"
		assert.Equal(t, Of("let", "x"), pattern)
		assert.Equal(t, 2, c.Offset())
	})

	t.Run("check mode doesn't build the output", func(t *testing.T) {
		c := NewCursor[string](NewSliceInput([]string{"a", "b"}))
		out, err := Just[string](Of("a")).Parse(c, Check)
		require.NoError(t, err)
		assert.Nil(t, out)
		assert.Equal(t, 1, c.Offset())
	})

	t.Run("bytes", func(t *testing.T) {
		c := NewCursor[byte](NewBytesInput([]byte("GET /")))
		out, err := Just[byte](Raw("GET")).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, Raw("GET"), out)
		assert.Equal(t, 3, c.Offset())
	})

	t.Run("succeeds iff the next tokens equal the pattern", func(t *testing.T) {
		input := "abab"
		patterns := []Text{"a", "ab", "aba", "abab", "ababa", "b", "ba", "bab"}
		for _, pattern := range patterns {
			for offset := 0; offset <= len(input); offset++ {
				c := cursorAt(input, offset)
				_, err := Just[rune](pattern).Parse(c, Check)
				rest := input[offset:]
				matches := len(rest) >= len(pattern) && rest[:len(pattern)] == string(pattern)
				assert.Equal(t, matches, err == nil, "%s @ %d", pattern, offset)
				if matches {
					assert.Equal(t, offset+len(pattern), c.Offset())
				}
			}
		}
	})
}

func TestOneOf(t *testing.T) {
	t.Run("first character in the set", func(t *testing.T) {
		c := cursorAt("abc", 0)
		out, err := OneOf[rune](Of('a', 'b', 'c')).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, 'a', out)
		assert.Equal(t, 1, c.Offset())
	})

	t.Run("text works as a set", func(t *testing.T) {
		c := cursorAt("2", 0)
		out, err := OneOf[rune](Text("0123456789")).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, '2', out)
	})

	t.Run("character out of the set", func(t *testing.T) {
		c := cursorAt("x", 0)
		_, err := OneOf[rune](Of('a', 'b', 'c')).Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, "Expected one of [a b c] but got `x` @ 0..1", err.Error())
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("end of input", func(t *testing.T) {
		c := cursorAt("", 0)
		_, err := OneOf[rune](Of('a')).Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, "Expected one of [a] but got EOF @ 0", err.Error())
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("consumes exactly one token iff it's in the set", func(t *testing.T) {
		set := Of('a', 'b', 'c')
		for _, input := range []string{"a", "b", "c", "d", "z", ""} {
			c := cursorAt(input, 0)
			_, err := OneOf[rune](set).Parse(c, Check)
			member := input != "" && input != "d" && input != "z"
			assert.Equal(t, member, err == nil, input)
			if member {
				assert.Equal(t, 1, c.Offset())
			} else {
				assert.Equal(t, 0, c.Offset())
			}
		}
	})
}

func TestNoneOf(t *testing.T) {
	t.Run("character out of the set", func(t *testing.T) {
		c := cursorAt("x", 0)
		out, err := NoneOf[rune](Of('a', 'b', 'c')).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, 'x', out)
		assert.Equal(t, 1, c.Offset())
	})

	t.Run("character in the set", func(t *testing.T) {
		c := cursorAt("b", 0)
		_, err := NoneOf[rune](Of('a', 'b', 'c')).Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, "Expected none of [a b c] but got `b` @ 0..1", err.Error())
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("end of input fails", func(t *testing.T) {
		c := cursorAt("", 0)
		_, err := NoneOf[rune](Of('a')).Parse(c, Emit)
		require.Error(t, err)
		assert.True(t, err.(*Error).EOF)
	})

	t.Run("empty set accepts any token", func(t *testing.T) {
		c := cursorAt("q", 0)
		out, err := NoneOf[rune](Of[rune]()).Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, 'q', out)
	})
}

func TestFilter(t *testing.T) {
	digit := FilterNamed("digit", unicode.IsDigit)

	t.Run("predicate holds", func(t *testing.T) {
		c := cursorAt("7a", 0)
		out, err := digit.Parse(c, Emit)
		require.NoError(t, err)
		assert.Equal(t, '7', out)
		assert.Equal(t, 1, c.Offset())
	})

	t.Run("predicate fails", func(t *testing.T) {
		c := cursorAt("a7", 0)
		_, err := digit.Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, "Expected digit but got `a` @ 0..1", err.Error())
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("unnamed filters have a generic description", func(t *testing.T) {
		c := cursorAt("a", 0)
		_, err := Filter(unicode.IsSpace).Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, "Expected token matching filter but got `a` @ 0..1", err.Error())
	})

	t.Run("predicate sees the token only", func(t *testing.T) {
		var seen []rune
		p := Filter(func(r rune) bool {
			seen = append(seen, r)
			return true
		})
		c := cursorAt("xy", 1)
		_, err := p.Parse(c, Check)
		require.NoError(t, err)
		assert.Equal(t, []rune{'y'}, seen)
	})
}

func TestAny(t *testing.T) {
	t.Run("consumes whatever is there", func(t *testing.T) {
		for _, input := range []string{"a", "\n", "€"} {
			c := cursorAt(input, 0)
			out, err := Any[rune]().Parse(c, Emit)
			require.NoError(t, err)
			assert.Equal(t, []rune(input)[0], out)
			assert.Equal(t, len(input), c.Offset())
		}
	})

	t.Run("fails on end of input", func(t *testing.T) {
		c := cursorAt("a", 1)
		_, err := Any[rune]().Parse(c, Emit)
		require.Error(t, err)
		assert.Equal(t, "Expected any token but got EOF @ 1", err.Error())
		assert.Equal(t, 1, c.Offset())
	})
}

// probe erases the output type of a parser so parsers of all shapes
// can be run by the same table
type probe func(c *Cursor[rune], m Mode) error

func erase[O any](p Parser[rune, O]) probe {
	return func(c *Cursor[rune], m Mode) error {
		_, err := p.Parse(c, m)
		return err
	}
}

func TestModeEquivalence(t *testing.T) {
	parsers := map[string]probe{
		"end":        erase[Unit](End[rune]()),
		"empty":      erase[Unit](Empty[rune]()),
		"just a":     erase[Text](Just[rune](Text("a"))),
		"just ab":    erase[Text](Just[rune](Text("ab"))),
		"just aé":    erase[Text](Just[rune](Text("aé"))),
		"just tok":   erase[Tokens[rune]](Just[rune](Of('b', 'a'))),
		"one of":     erase[rune](OneOf[rune](Of('a', 'é'))),
		"none of":    erase[rune](NoneOf[rune](Text("ab"))),
		"filter":     erase[rune](Filter(unicode.IsLetter)),
		"any":        erase[rune](Any[rune]()),
		"choice":     erase[Text](Choice[rune, Text](Just[rune](Text("ba")), Just[rune](Text("ab")))),
		"or":         erase[rune](Or[rune, rune](OneOf[rune](Text("x")), Any[rune]())),
		"choice end": erase[Unit](Choice[rune, Unit](End[rune](), Empty[rune]())),
	}
	inputs := []string{"", "a", "ab", "aé", "ba", "abab", "xé", " "}

	for name, p := range parsers {
		for _, input := range inputs {
			for offset := 0; offset <= len(input); offset++ {
				check := cursorAt(input, offset)
				emit := cursorAt(input, offset)

				checkErr := p(check, Check)
				emitErr := p(emit, Emit)

				assert.Equal(t, emitErr == nil, checkErr == nil, "%s on %q @ %d", name, input, offset)
				assert.Equal(t, emit.Offset(), check.Offset(), "%s on %q @ %d", name, input, offset)
				if diff := cmp.Diff(emitErr, checkErr, cmp.Comparer(sameError)); diff != "" {
					t.Errorf("%s on %q @ %d: errors differ (-emit +check):\n%s", name, input, offset, diff)
				}
			}
		}
	}
}

func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Error() == b.Error()
}
