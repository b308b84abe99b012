package country

import (
	"encoding/json"
	"fmt"
	"slices"

	dErrors "isocountry/pkg/domain-errors"
	"isocountry/pkg/platform/sentinel"
)

// Timezones is the immutable, source-ordered set of timezones of one country.
type Timezones struct {
	items []Timezone
	def   Timezone
}

// TimezonesFromAlpha2 builds the collection for code from the default catalog.
func TimezonesFromAlpha2(code Alpha2Code) (Timezones, error) {
	return DefaultCatalog().Timezones(code)
}

// All returns every timezone in source order.
func (t Timezones) All() []Timezone {
	return slices.Clone(t.items)
}

// Count returns the number of timezones.
func (t Timezones) Count() int {
	return len(t.items)
}

// Default returns the first timezone, or UTC when the country has none.
func (t Timezones) Default() Timezone {
	if t.def.value == "" {
		return UTC()
	}
	return t.def
}

// Contains reports whether identifier is one of the country's timezones.
// The comparison is exact and case-sensitive.
func (t Timezones) Contains(identifier string) bool {
	_, ok := t.find(identifier)
	return ok
}

// FindByIdentifier returns the matching timezone. A miss returns an error
// wrapping sentinel.ErrNotFound; it never substitutes UTC, so callers can
// tell "no match" from "matched UTC".
func (t Timezones) FindByIdentifier(identifier string) (Timezone, error) {
	if tz, ok := t.find(identifier); ok {
		return tz, nil
	}
	return Timezone{}, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound,
		fmt.Sprintf("timezone <%s> not found for country", identifier))
}

// ToStrings returns the identifiers as plain strings, 1:1 with All.
func (t Timezones) ToStrings() []string {
	out := make([]string, len(t.items))
	for i, tz := range t.items {
		out[i] = tz.value
	}
	return out
}

// MarshalJSON encodes the collection as an array of identifiers.
func (t Timezones) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToStrings())
}

func (t Timezones) find(identifier string) (Timezone, bool) {
	idx := slices.IndexFunc(t.items, func(tz Timezone) bool {
		return tz.value == identifier
	})
	if idx < 0 {
		return Timezone{}, false
	}
	return t.items[idx], true
}
