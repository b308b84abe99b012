// Package service resolves country records for the HTTP layer. It fronts the
// country package with a record cache, tracing and metrics.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks RecordCache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"isocountry/internal/lookup/metrics"
	"isocountry/internal/lookup/models"
	"isocountry/pkg/country"
	dErrors "isocountry/pkg/domain-errors"
	"isocountry/pkg/platform/sentinel"
	"isocountry/pkg/requestcontext"
)

// RecordCache stores resolved records by Alpha-2 code. A miss is
// sentinel.ErrNotFound; any other error is treated as a cache outage.
type RecordCache interface {
	Get(ctx context.Context, alpha2 string) (*models.Record, error)
	Put(ctx context.Context, rec *models.Record, ttl time.Duration) error
}

const (
	defaultTTL         = 24 * time.Hour
	defaultConcurrency = 8
)

// Service resolves country records.
type Service struct {
	factory     *country.Factory
	cache       RecordCache
	ttl         time.Duration
	concurrency int
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables record caching. Without it every lookup builds the record.
func WithCache(cache RecordCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithTTL sets the record cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithConcurrency bounds parallel record builds in List and Warm.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service over factory. A nil factory uses the default catalog.
func New(factory *country.Factory, opts ...Option) *Service {
	if factory == nil {
		factory = country.NewFactory(nil)
	}
	s := &Service{
		factory:     factory,
		ttl:         defaultTTL,
		concurrency: defaultConcurrency,
		tracer:      otel.Tracer("isocountry/internal/lookup/service"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Lookup resolves code (Alpha-2 or Alpha-3) to a record. A non-empty name
// replaces the derived name on the returned copy only.
func (s *Service) Lookup(ctx context.Context, code, name string) (*models.Record, error) {
	ctx, span := s.tracer.Start(ctx, "lookup.Lookup", trace.WithAttributes(attribute.String("country.code", code)))
	defer span.End()
	start := time.Now()
	defer s.metrics.ObserveLookupLatency(start)

	alphaCode, err := country.ParseCode(code)
	if err != nil {
		s.metrics.IncrementOutcome("invalid")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	alpha2, err := country.CanonicalAlpha2(alphaCode)
	if err != nil {
		s.metrics.IncrementOutcome("error")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("country.alpha2", alpha2.String()))

	rec, err := s.record(ctx, alpha2)
	if err != nil {
		s.metrics.IncrementOutcome("error")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.metrics.IncrementOutcome("ok")
	return rec.WithName(name), nil
}

// List resolves codes in order, or every tabled country when codes is empty.
// The first invalid code fails the whole call.
func (s *Service) List(ctx context.Context, requested []string) ([]*models.Record, error) {
	if len(requested) == 0 {
		requested = allAlpha2()
	}

	out := make([]*models.Record, len(requested))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, code := range requested {
		g.Go(func() error {
			rec, err := s.Lookup(gctx, code, "")
			if err != nil {
				return err
			}
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindTimezone returns identifier as observed in the country at the request
// time. The identifier must belong to the country; UTC is not substituted.
func (s *Service) FindTimezone(ctx context.Context, code, identifier string) (*models.TimezoneDetail, error) {
	ctx, span := s.tracer.Start(ctx, "lookup.FindTimezone", trace.WithAttributes(
		attribute.String("country.code", code),
		attribute.String("timezone.identifier", identifier),
	))
	defer span.End()

	c, err := s.factory.FromString(code, "")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	tz, err := c.Timezones.FindByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	loc, err := tz.Location()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load location "+tz.Identifier())
	}

	at := requestcontext.Now(ctx).In(loc)
	abbrev, offset := at.Zone()
	return &models.TimezoneDetail{
		Alpha2:        c.Alpha2.String(),
		Identifier:    tz.Identifier(),
		Abbreviation:  abbrev,
		OffsetSeconds: offset,
		IsDefault:     tz == c.Timezones.Default(),
		At:            at,
	}, nil
}

// Warm resolves every tabled country into the cache. It returns the number
// of records written.
func (s *Service) Warm(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	ctx, span := s.tracer.Start(ctx, "lookup.Warm")
	defer span.End()
	start := time.Now()

	all := allAlpha2()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, code := range all {
		g.Go(func() error {
			alpha2, err := country.ParseAlpha2(code)
			if err != nil {
				return err
			}
			rec, err := s.build(gctx, alpha2)
			if err != nil {
				return err
			}
			return s.cache.Put(gctx, rec, s.ttl)
		})
	}
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, dErrors.Wrap(err, dErrors.CodeUnavailable, "cache warmup failed")
	}

	s.metrics.RecordWarm(time.Since(start), len(all))
	s.logger.InfoContext(ctx, "record cache warmed",
		"records", len(all),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return len(all), nil
}

// record serves alpha2 from the cache when possible. Cache failures are
// logged and the record is rebuilt.
func (s *Service) record(ctx context.Context, alpha2 country.Alpha2Code) (*models.Record, error) {
	if s.cache == nil {
		return s.build(ctx, alpha2)
	}

	rec, err := s.cache.Get(ctx, alpha2.String())
	switch {
	case err == nil:
		s.metrics.IncrementCacheResult("hit")
		return rec, nil
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncrementCacheResult("miss")
	default:
		s.metrics.IncrementCacheResult("error")
		s.logger.WarnContext(ctx, "record cache read failed",
			"alpha2", alpha2.String(),
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}

	rec, err = s.build(ctx, alpha2)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, rec, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "record cache write failed",
			"alpha2", alpha2.String(),
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	return rec, nil
}

func (s *Service) build(ctx context.Context, alpha2 country.Alpha2Code) (*models.Record, error) {
	c, err := s.factory.From(alpha2, "")
	if err != nil {
		return nil, err
	}
	return models.NewRecord(c, requestcontext.Now(ctx)), nil
}

func allAlpha2() []string {
	all := country.Alpha2Codes()
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = c.String()
	}
	return out
}
