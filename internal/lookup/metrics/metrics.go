package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the lookup module.
type Metrics struct {
	// Lookup outcomes: "ok", "invalid", "error"
	LookupOutcome *prometheus.CounterVec

	// Record cache results: "hit", "miss", "error"
	CacheResult *prometheus.CounterVec

	// Timezone catalog reads, labelled by whether the memo served them
	CatalogLookups *prometheus.CounterVec

	LookupLatency prometheus.Histogram

	WarmDuration prometheus.Gauge
	WarmRecords  prometheus.Gauge
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "isocountry_lookup_outcomes_total",
			Help: "Country lookups by outcome",
		}, []string{"outcome"}),

		CacheResult: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "isocountry_record_cache_results_total",
			Help: "Record cache reads by result",
		}, []string{"result"}),

		CatalogLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "isocountry_timezone_catalog_lookups_total",
			Help: "Timezone catalog reads by memo state",
		}, []string{"cached"}),

		LookupLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "isocountry_lookup_duration_seconds",
			Help:    "Duration of a single country lookup including cache access",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		WarmDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "isocountry_cache_warm_duration_seconds",
			Help: "Duration of the last cache warmup",
		}),

		WarmRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "isocountry_cache_warm_records",
			Help: "Records written by the last cache warmup",
		}),
	}
}

// IncrementOutcome records a lookup outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementCacheResult records a cache read result.
func (m *Metrics) IncrementCacheResult(result string) {
	if m != nil {
		m.CacheResult.WithLabelValues(result).Inc()
	}
}

// ObserveCatalogLookup matches country.LookupHook so it can be passed to
// country.WithLookupHook. The country code is not a label.
func (m *Metrics) ObserveCatalogLookup(_ string, cached bool) {
	if m != nil {
		m.CatalogLookups.WithLabelValues(strconv.FormatBool(cached)).Inc()
	}
}

// ObserveLookupLatency records the duration since start.
func (m *Metrics) ObserveLookupLatency(start time.Time) {
	if m != nil {
		m.LookupLatency.Observe(time.Since(start).Seconds())
	}
}

// RecordWarm records the outcome of a cache warmup.
func (m *Metrics) RecordWarm(d time.Duration, records int) {
	if m != nil {
		m.WarmDuration.Set(d.Seconds())
		m.WarmRecords.Set(float64(records))
	}
}
