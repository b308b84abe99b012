package country

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowercaseWords are lowered after title-casing when they stand as whole words.
var lowercaseWords = map[string]string{
	"Of":  "of",
	"And": "and",
	"The": "the",
}

// Name is a non-empty country name.
type Name string

// NewName validates a caller-supplied name. The value is kept verbatim.
func NewName(s string) (Name, error) {
	if s == "" {
		return "", emptyName()
	}
	return Name(s), nil
}

// NameFromCode derives a readable name from the code's symbolic name.
func NameFromCode(code AlphaCode) (Name, error) {
	return NewName(Normalize(code.Name()))
}

func (n Name) String() string {
	return string(n)
}

// Normalize turns a symbolic name into a title-cased name:
// UNITED_STATES_OF_AMERICA becomes "United States of America".
//
// Prepositions are only lowered as whole words, so ANDORRA stays "Andorra".
// Normalize is not idempotent for names starting with a preposition; no
// symbolic name in the tables does.
func Normalize(symbolicName string) string {
	spaced := strings.ReplaceAll(symbolicName, "_", " ")
	// Casers are stateful and not safe for concurrent use.
	titled := cases.Title(language.Und).String(spaced)

	words := strings.Split(titled, " ")
	for i, word := range words {
		if lower, ok := lowercaseWords[word]; ok {
			words[i] = lower
		}
	}
	return strings.Join(words, " ")
}
