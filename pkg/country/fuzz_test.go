package country

import (
	"errors"
	"strings"
	"testing"
)

// FuzzFromString checks that arbitrary input never panics and that every
// accepted code yields a consistent pair.
func FuzzFromString(f *testing.F) {
	f.Add("US")
	f.Add("USA")
	f.Add("")
	f.Add("X")
	f.Add("XYZ1")
	f.Add("us")
	f.Add(string([]byte{0x00, 0xff}))

	f.Fuzz(func(t *testing.T, input string) {
		c, err := FromString(input, "")
		if err != nil {
			if !errors.Is(err, ErrInvalidCode) {
				t.Fatalf("unexpected error kind for %q: %v", input, err)
			}
			return
		}
		if c.Alpha2.Name() != c.Alpha3.Name() {
			t.Fatalf("pair mismatch for %q: %s vs %s", input, c.Alpha2, c.Alpha3)
		}
		if string(c.Alpha2) != input && string(c.Alpha3) != input {
			t.Fatalf("input %q not preserved in %s", input, c)
		}
	})
}

// FuzzNormalize checks that normalized names never contain underscores and
// that lowered prepositions only appear as whole words.
func FuzzNormalize(f *testing.F) {
	f.Add("UNITED_STATES_OF_AMERICA")
	f.Add("ANDORRA")
	f.Add("__")
	f.Add("THE_END")

	f.Fuzz(func(t *testing.T, input string) {
		out := Normalize(input)
		if strings.Contains(out, "_") {
			t.Fatalf("Normalize(%q) = %q still has underscores", input, out)
		}
		for _, word := range strings.Split(out, " ") {
			if _, ok := lowercaseWords[word]; ok {
				t.Fatalf("Normalize(%q) left preposition %q capitalized", input, word)
			}
		}
	})
}
