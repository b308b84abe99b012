package country

import (
	"time"

	"isocountry/pkg/country/tzdb"
)

// Timezone is a validated IANA timezone identifier such as "America/Sao_Paulo".
// The zero value is not valid; build one with NewTimezone or UTC.
type Timezone struct {
	value string
}

// NewTimezone validates identifier against the default catalog. Empty or
// unknown identifiers fail with ErrInvalidTimezone. Matching is exact.
func NewTimezone(identifier string) (Timezone, error) {
	return DefaultCatalog().NewTimezone(identifier)
}

// UTC is the universal fallback timezone.
func UTC() Timezone {
	return Timezone{value: tzdb.UTC}
}

// Identifier returns the IANA identifier.
func (t Timezone) Identifier() string {
	return t.value
}

func (t Timezone) String() string {
	return t.value
}

// IsUTC reports whether t is the UTC fallback.
func (t Timezone) IsUTC() bool {
	return t.value == tzdb.UTC
}

// Location loads the timezone rules for t.
func (t Timezone) Location() (*time.Location, error) {
	if t.value == "" {
		return nil, invalidTimezone(t.value)
	}
	return time.LoadLocation(t.value)
}
