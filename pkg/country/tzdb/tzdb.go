// Package tzdb exposes the IANA timezone database as a per-country listing.
//
// The listing is parsed from zone.tab. A copy is embedded so the package works
// on hosts without /usr/share/zoneinfo; LoadFile reads the host's copy when
// one is preferred. Identifier order within a country follows zone.tab, which
// lists the most populous zone of each country first.
package tzdb

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	// Bundles the zoneinfo data used by time.LoadLocation.
	_ "time/tzdata"
)

// UTC is always part of the identifier set, even though zone.tab never lists it.
const UTC = "UTC"

//go:embed zone.tab
var embeddedZoneTab []byte

// Database is an immutable per-country index of IANA identifiers.
type Database struct {
	byCountry map[string][]string
	all       []string
}

var embedded = sync.OnceValue(func() *Database {
	db, err := Load(bytes.NewReader(embeddedZoneTab))
	if err != nil {
		panic(fmt.Sprintf("tzdb: embedded zone.tab is corrupt: %v", err))
	}
	return db
})

// Embedded returns the database built from the bundled zone.tab.
func Embedded() *Database {
	return embedded()
}

// LoadFile parses a zone.tab file from disk.
func LoadFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zone table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses zone.tab formatted data: tab-separated rows of country code,
// coordinates, identifier and an optional comment. Lines starting with '#'
// are ignored.
func Load(r io.Reader) (*Database, error) {
	db := &Database{byCountry: make(map[string][]string)}
	seen := map[string]struct{}{UTC: {}}
	db.all = append(db.all, UTC)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("zone table line %d: expected at least 3 fields, got %d", line, len(fields))
		}
		code, identifier := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[2])
		if code == "" || identifier == "" {
			return nil, fmt.Errorf("zone table line %d: empty country code or identifier", line)
		}
		db.byCountry[code] = append(db.byCountry[code], identifier)
		if _, ok := seen[identifier]; !ok {
			seen[identifier] = struct{}{}
			db.all = append(db.all, identifier)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read zone table: %w", err)
	}
	slices.Sort(db.all)
	return db, nil
}

// ListIdentifiers returns the identifiers of one country in zone.tab order.
// The result is empty, never nil, for countries without a zone.
func (d *Database) ListIdentifiers(countryCode string) []string {
	return append([]string{}, d.byCountry[countryCode]...)
}

// ListAllIdentifiers returns every known identifier, sorted, UTC included.
func (d *Database) ListAllIdentifiers() []string {
	return append([]string{}, d.all...)
}
