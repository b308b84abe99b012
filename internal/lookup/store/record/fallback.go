package record

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"isocountry/internal/lookup/models"
	"isocountry/pkg/platform/circuit"
	"isocountry/pkg/platform/sentinel"
)

// Cache is the contract shared by every record store.
type Cache interface {
	Get(ctx context.Context, alpha2 string) (*models.Record, error)
	Put(ctx context.Context, rec *models.Record, ttl time.Duration) error
}

var (
	_ Cache = (*InMemory)(nil)
	_ Cache = (*Redis)(nil)
	_ Cache = (*Fallback)(nil)
)

// Fallback serves records from a shared primary and degrades to a local
// cache while the breaker is open. The primary is always tried so that
// recovery is observed.
type Fallback struct {
	primary Cache
	local   Cache
	breaker *circuit.Breaker
	logger  *slog.Logger
}

// NewFallback wraps primary with local behind breaker.
func NewFallback(primary, local Cache, breaker *circuit.Breaker, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fallback{primary: primary, local: local, breaker: breaker, logger: logger}
}

func (f *Fallback) Get(ctx context.Context, alpha2 string) (*models.Record, error) {
	rec, err := f.primary.Get(ctx, alpha2)
	if err == nil || errors.Is(err, sentinel.ErrNotFound) {
		f.success(ctx)
		if err != nil && f.breaker.IsOpen() {
			return f.local.Get(ctx, alpha2)
		}
		return rec, err
	}
	if f.failure(ctx, err) {
		return f.local.Get(ctx, alpha2)
	}
	return nil, err
}

// Put always writes locally so the fallback is warm when the breaker opens.
func (f *Fallback) Put(ctx context.Context, rec *models.Record, ttl time.Duration) error {
	if err := f.local.Put(ctx, rec, ttl); err != nil {
		return err
	}
	err := f.primary.Put(ctx, rec, ttl)
	if err == nil {
		f.success(ctx)
		return nil
	}
	if f.failure(ctx, err) {
		return nil
	}
	return err
}

// State exposes the breaker position for health reporting.
func (f *Fallback) State() circuit.State {
	return f.breaker.State()
}

func (f *Fallback) success(ctx context.Context) {
	if _, change := f.breaker.RecordSuccess(); change.Closed {
		f.logger.InfoContext(ctx, "record cache recovered", "breaker", f.breaker.Name())
	}
}

func (f *Fallback) failure(ctx context.Context, err error) bool {
	useFallback, change := f.breaker.RecordFailure()
	if change.Opened {
		f.logger.WarnContext(ctx, "record cache degraded to local fallback",
			"breaker", f.breaker.Name(),
			"error", err,
		)
	}
	return useFallback
}
