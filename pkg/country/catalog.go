package country

import (
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"isocountry/pkg/country/tzdb"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mocks.go -package=mocks TimezoneSource

// TimezoneSource is the authoritative timezone database.
type TimezoneSource interface {
	// ListIdentifiers returns the IANA identifiers of one Alpha-2 country,
	// empty when the country has none.
	ListIdentifiers(countryCode string) []string
	// ListAllIdentifiers returns every valid IANA identifier.
	ListAllIdentifiers() []string
}

// LookupHook observes catalog lookups; cached is false when the source was queried.
type LookupHook func(countryCode string, cached bool)

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLookupHook registers a hook called after every ForAlpha2 call.
func WithLookupHook(hook LookupHook) CatalogOption {
	return func(c *Catalog) {
		c.onLookup = hook
	}
}

// Catalog memoizes per-country identifier lists from a TimezoneSource.
// Entries are written once per code and never invalidated; the source is
// assumed static for the catalog's lifetime. Safe for concurrent use.
type Catalog struct {
	source   TimezoneSource
	byCode   sync.Map // string -> []string
	inflight singleflight.Group
	known    func() map[string]struct{}
	onLookup LookupHook
}

// NewCatalog wraps source with per-code memoization.
func NewCatalog(source TimezoneSource, opts ...CatalogOption) *Catalog {
	c := &Catalog{source: source}
	c.known = sync.OnceValue(func() map[string]struct{} {
		all := source.ListAllIdentifiers()
		set := make(map[string]struct{}, len(all)+1)
		for _, id := range all {
			set[id] = struct{}{}
		}
		set[tzdb.UTC] = struct{}{}
		return set
	})
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return NewCatalog(tzdb.Embedded())
})

// DefaultCatalog returns the process-wide catalog over the embedded database.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// ForAlpha2 returns the identifiers for an Alpha-2 code in source order.
func (c *Catalog) ForAlpha2(countryCode string) []string {
	if cached, ok := c.byCode.Load(countryCode); ok {
		c.observe(countryCode, true)
		return slices.Clone(cached.([]string))
	}

	// Concurrent first lookups share one source query.
	v, _, _ := c.inflight.Do(countryCode, func() (any, error) {
		if cached, ok := c.byCode.Load(countryCode); ok {
			return cached, nil
		}
		ids := c.source.ListIdentifiers(countryCode)
		if ids == nil {
			ids = []string{}
		}
		c.byCode.Store(countryCode, ids)
		return ids, nil
	})
	c.observe(countryCode, false)
	return slices.Clone(v.([]string))
}

// IsKnown reports whether identifier belongs to the full identifier set.
// UTC is always known.
func (c *Catalog) IsKnown(identifier string) bool {
	_, ok := c.known()[identifier]
	return ok
}

// NewTimezone validates identifier against this catalog's identifier set.
func (c *Catalog) NewTimezone(identifier string) (Timezone, error) {
	if identifier == "" || !c.IsKnown(identifier) {
		return Timezone{}, invalidTimezone(identifier)
	}
	return Timezone{value: identifier}, nil
}

// Timezones builds the collection for an Alpha-2 code. The default is the
// first identifier, or UTC when the source lists none.
func (c *Catalog) Timezones(code Alpha2Code) (Timezones, error) {
	ids := c.ForAlpha2(code.String())
	items := make([]Timezone, 0, len(ids))
	for _, id := range ids {
		tz, err := c.NewTimezone(id)
		if err != nil {
			return Timezones{}, err
		}
		items = append(items, tz)
	}

	def := UTC()
	if len(items) > 0 {
		def = items[0]
	}
	return Timezones{items: items, def: def}, nil
}

func (c *Catalog) observe(countryCode string, cached bool) {
	if c.onLookup != nil {
		c.onLookup(countryCode, cached)
	}
}
