package models

import (
	"slices"
	"time"

	"isocountry/pkg/country"
)

// Record is the cached, serializable projection of a country.Country.
// Records are keyed by Alpha2 and always carry the derived name; a caller
// override is applied per request with WithName.
type Record struct {
	Name            string    `json:"name"`
	Alpha2          string    `json:"alpha2"`
	Alpha3          string    `json:"alpha3"`
	Timezones       []string  `json:"timezones"`
	DefaultTimezone string    `json:"default_timezone"`
	ResolvedAt      time.Time `json:"resolved_at"`
}

// NewRecord projects c into a Record stamped with resolvedAt.
func NewRecord(c country.Country, resolvedAt time.Time) *Record {
	return &Record{
		Name:            c.Name,
		Alpha2:          c.Alpha2.String(),
		Alpha3:          c.Alpha3.String(),
		Timezones:       c.Timezones.ToStrings(),
		DefaultTimezone: c.Timezones.Default().Identifier(),
		ResolvedAt:      resolvedAt,
	}
}

// WithName returns a copy of r carrying name. An empty name returns r itself.
func (r *Record) WithName(name string) *Record {
	if name == "" {
		return r
	}
	cp := *r
	cp.Name = name
	cp.Timezones = slices.Clone(r.Timezones)
	return &cp
}

// TimezoneDetail describes one identifier of a country at a point in time.
type TimezoneDetail struct {
	Alpha2        string    `json:"alpha2"`
	Identifier    string    `json:"identifier"`
	Abbreviation  string    `json:"abbreviation"`
	OffsetSeconds int       `json:"offset_seconds"`
	IsDefault     bool      `json:"is_default"`
	At            time.Time `json:"at"`
}
