// Package country models ISO 3166-1 country identity: Alpha-2 and Alpha-3
// codes, their bidirectional mapping, a readable country name, and the IANA
// timezones of each country.
//
// Usage:
//
//	c, err := country.FromString("US", "")
//	// c.Name == "United States of America", c.Alpha3 == "USA"
//	tz := c.Timezones.Default()
package country

import (
	"fmt"
	"sync"
)

// Country is an immutable country record. Alpha2 and Alpha3 always denote
// the same country, and Timezones always comes from Alpha2.
type Country struct {
	Name      string     `json:"name"`
	Alpha2    Alpha2Code `json:"alpha2"`
	Alpha3    Alpha3Code `json:"alpha3"`
	Timezones Timezones  `json:"timezones"`
}

func (c Country) String() string {
	return fmt.Sprintf("%s (%s/%s)", c.Name, c.Alpha2, c.Alpha3)
}

// Factory builds countries against one timezone catalog.
type Factory struct {
	catalog *Catalog
}

// NewFactory returns a Factory using catalog, or the default catalog when nil.
func NewFactory(catalog *Catalog) *Factory {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Factory{catalog: catalog}
}

var defaultFactory = sync.OnceValue(func() *Factory {
	return NewFactory(DefaultCatalog())
})

// From builds a Country from an Alpha-2 or Alpha-3 code using the default
// catalog. See Factory.From.
func From(code AlphaCode, name string) (Country, error) {
	return defaultFactory().From(code, name)
}

// FromString builds a Country from a code string using the default catalog.
// See Factory.FromString.
func FromString(code, name string) (Country, error) {
	return defaultFactory().FromString(code, name)
}

// From builds a Country from code, resolving the sibling code from the other
// table. An empty name is derived from the symbolic name; any other name is
// kept verbatim.
//
// Errors: ErrInvalidCodeKind when code is neither a tabled Alpha2Code nor a
// tabled Alpha3Code; ErrCodeNotFound when the tables disagree.
func (f *Factory) From(code AlphaCode, name string) (Country, error) {
	var (
		alpha2 Alpha2Code
		alpha3 Alpha3Code
		err    error
	)
	switch c := code.(type) {
	case Alpha2Code:
		if !c.IsValid() {
			return Country{}, invalidCodeKind(code)
		}
		alpha2 = c
		alpha3, err = c.ToAlpha3()
	case Alpha3Code:
		if !c.IsValid() {
			return Country{}, invalidCodeKind(code)
		}
		alpha3 = c
		alpha2, err = c.ToAlpha2()
	default:
		return Country{}, invalidCodeKind(code)
	}
	if err != nil {
		return Country{}, err
	}

	resolved, err := resolveName(code, name)
	if err != nil {
		return Country{}, err
	}

	timezones, err := f.catalog.Timezones(alpha2)
	if err != nil {
		return Country{}, err
	}

	return Country{
		Name:      resolved.String(),
		Alpha2:    alpha2,
		Alpha3:    alpha3,
		Timezones: timezones,
	}, nil
}

// FromString parses code with ParseCode and builds the Country with From.
func (f *Factory) FromString(code, name string) (Country, error) {
	alphaCode, err := ParseCode(code)
	if err != nil {
		return Country{}, err
	}
	return f.From(alphaCode, name)
}

// ParseCode classifies s by length: exactly two bytes selects the Alpha-2
// table, anything else the Alpha-3 table. A miss fails with ErrInvalidCode.
func ParseCode(s string) (AlphaCode, error) {
	if len(s) == Alpha2Length {
		alpha2, err := ParseAlpha2(s)
		if err != nil {
			return nil, err
		}
		return alpha2, nil
	}
	alpha3, err := ParseAlpha3(s)
	if err != nil {
		return nil, err
	}
	return alpha3, nil
}

// CanonicalAlpha2 returns the Alpha-2 code that code denotes.
func CanonicalAlpha2(code AlphaCode) (Alpha2Code, error) {
	switch c := code.(type) {
	case Alpha2Code:
		if !c.IsValid() {
			return "", invalidCodeKind(code)
		}
		return c, nil
	case Alpha3Code:
		if !c.IsValid() {
			return "", invalidCodeKind(code)
		}
		return c.ToAlpha2()
	default:
		return "", invalidCodeKind(code)
	}
}

// Catalog returns the catalog backing f.
func (f *Factory) Catalog() *Catalog {
	return f.catalog
}

func resolveName(code AlphaCode, name string) (Name, error) {
	if name == "" {
		return NameFromCode(code)
	}
	return NewName(name)
}
