package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	lookuphandler "isocountry/internal/lookup/handler"
	lookupmetrics "isocountry/internal/lookup/metrics"
	"isocountry/internal/lookup/service"
	"isocountry/internal/lookup/store/record"
	"isocountry/internal/platform/config"
	"isocountry/internal/platform/httpserver"
	"isocountry/internal/platform/logger"
	"isocountry/internal/platform/metrics"
	"isocountry/internal/platform/redis"
	httptransport "isocountry/internal/transport/http"
	"isocountry/pkg/country"
	"isocountry/pkg/country/tzdb"
	"isocountry/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Lookup logic lives in internal/lookup.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	httpMetrics := metrics.New(prometheus.DefaultRegisterer)
	lookupMetrics := lookupmetrics.New(prometheus.DefaultRegisterer)

	source, err := timezoneSource(cfg)
	if err != nil {
		return err
	}
	catalog := country.NewCatalog(source, country.WithLookupHook(lookupMetrics.ObserveCatalogLookup))

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(lookupMetrics),
		service.WithTTL(cfg.RecordCacheTTL),
		service.WithConcurrency(cfg.WarmConcurrency),
	}

	deps := httptransport.Deps{Logger: log, Metrics: httpMetrics}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache := record.NewFallback(
			record.NewRedis(redisClient.Client),
			record.NewInMemory(),
			circuit.New("record-cache"),
			log,
		)
		opts = append(opts, service.WithCache(cache))
		deps.Health = redisClient
		log.Info("record cache: redis")
	} else {
		opts = append(opts, service.WithCache(record.NewInMemory()))
		log.Info("record cache: in-memory")
	}

	svc := service.New(country.NewFactory(catalog), opts...)
	if cfg.WarmCache {
		if _, err := svc.Warm(ctx); err != nil {
			log.Warn("cache warmup failed, continuing cold", "error", err)
		}
	}

	deps.Lookup = lookuphandler.New(svc, log)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(deps))

	log.Info("starting country service", "addr", cfg.Addr)
	return httpserver.Run(ctx, srv, log)
}

func timezoneSource(cfg config.Server) (country.TimezoneSource, error) {
	if cfg.ZoneTabPath == "" {
		return tzdb.Embedded(), nil
	}
	db, err := tzdb.LoadFile(cfg.ZoneTabPath)
	if err != nil {
		return nil, err
	}
	return db, nil
}
