package record

import (
	"context"
	"fmt"
	"sync"
	"time"

	"isocountry/internal/lookup/models"
	"isocountry/pkg/platform/sentinel"
)

type entry struct {
	record    models.Record
	expiresAt time.Time
}

// InMemory is a process-local record cache with per-entry TTL.
// Expired entries are dropped lazily on read.
type InMemory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// InMemoryOption configures an InMemory cache.
type InMemoryOption func(*InMemory)

// WithClock overrides the clock used for expiry.
func WithClock(now func() time.Time) InMemoryOption {
	return func(c *InMemory) {
		c.now = now
	}
}

// NewInMemory constructs an empty cache.
func NewInMemory(opts ...InMemoryOption) *InMemory {
	c := &InMemory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get returns a copy of the record cached for alpha2, or sentinel.ErrNotFound.
func (c *InMemory) Get(_ context.Context, alpha2 string) (*models.Record, error) {
	c.mu.RLock()
	e, ok := c.entries[alpha2]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("record %s: %w", alpha2, sentinel.ErrNotFound)
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		if cur, ok := c.entries[alpha2]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, alpha2)
		}
		c.mu.Unlock()
		return nil, fmt.Errorf("record %s expired: %w", alpha2, sentinel.ErrNotFound)
	}

	rec := e.record
	rec.Timezones = append([]string(nil), e.record.Timezones...)
	return &rec, nil
}

// Put stores a copy of rec under its Alpha2 code for ttl.
func (c *InMemory) Put(_ context.Context, rec *models.Record, ttl time.Duration) error {
	if rec == nil || rec.Alpha2 == "" {
		return fmt.Errorf("record without alpha2 code")
	}
	stored := *rec
	stored.Timezones = append([]string(nil), rec.Timezones...)

	c.mu.Lock()
	c.entries[rec.Alpha2] = entry{record: stored, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Len reports the number of entries, including expired ones not yet evicted.
func (c *InMemory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
