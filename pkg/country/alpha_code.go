package country

// Code lengths per ISO 3166-1 table.
const (
	Alpha2Length = 2
	Alpha3Length = 3
)

// AlphaCode is a country code from one of the two ISO 3166-1 tables.
// Only Alpha2Code and Alpha3Code are accepted by From; other implementations
// are rejected with ErrInvalidCodeKind.
type AlphaCode interface {
	// Name is the symbolic table name, e.g. UNITED_STATES_OF_AMERICA.
	Name() string
	String() string
}

// Alpha2Code is a two-letter ISO 3166-1 code such as "BR".
//
// Usage: construct via ParseAlpha2 at trust boundaries; a direct conversion
// bypasses validation and is rejected by From when the value is not in the
// table.
type Alpha2Code string

// Alpha3Code is a three-letter ISO 3166-1 code such as "BRA".
//
// Usage: construct via ParseAlpha3 at trust boundaries; a direct conversion
// bypasses validation.
type Alpha3Code string

var (
	alpha2Names = indexByCode(alpha2Table)
	alpha3Names = indexByCode(alpha3Table)
)

// ParseAlpha2 returns the Alpha2Code for s, or ErrInvalidCode when s is not in
// the table. Matching is exact: "br" is not "BR".
func ParseAlpha2(s string) (Alpha2Code, error) {
	c := Alpha2Code(s)
	if !c.IsValid() {
		return "", invalidCode(s)
	}
	return c, nil
}

// ParseAlpha3 returns the Alpha3Code for s, or ErrInvalidCode when s is not in
// the table.
func ParseAlpha3(s string) (Alpha3Code, error) {
	c := Alpha3Code(s)
	if !c.IsValid() {
		return "", invalidCode(s)
	}
	return c, nil
}

// Alpha2Codes returns every Alpha-2 code in table order.
func Alpha2Codes() []Alpha2Code {
	return codesOf(alpha2Table)
}

// Alpha3Codes returns every Alpha-3 code in table order.
func Alpha3Codes() []Alpha3Code {
	return codesOf(alpha3Table)
}

// IsValid reports whether c is present in the Alpha-2 table.
func (c Alpha2Code) IsValid() bool {
	_, ok := alpha2Names[c]
	return ok
}

// Name returns the symbolic name, or "" for a code outside the table.
func (c Alpha2Code) Name() string {
	return alpha2Names[c]
}

func (c Alpha2Code) String() string {
	return string(c)
}

// ToAlpha3 maps c to the Alpha-3 code of the same country.
func (c Alpha2Code) ToAlpha3() (Alpha3Code, error) {
	if !c.IsValid() {
		return "", invalidCode(string(c))
	}
	return resolve(c.Name(), alpha3Table)
}

// IsValid reports whether c is present in the Alpha-3 table.
func (c Alpha3Code) IsValid() bool {
	_, ok := alpha3Names[c]
	return ok
}

// Name returns the symbolic name, or "" for a code outside the table.
func (c Alpha3Code) Name() string {
	return alpha3Names[c]
}

func (c Alpha3Code) String() string {
	return string(c)
}

// ToAlpha2 maps c to the Alpha-2 code of the same country.
func (c Alpha3Code) ToAlpha2() (Alpha2Code, error) {
	if !c.IsValid() {
		return "", invalidCode(string(c))
	}
	return resolve(c.Name(), alpha2Table)
}
