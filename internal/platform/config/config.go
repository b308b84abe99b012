package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	// ZoneTabPath overrides the embedded timezone database when set.
	ZoneTabPath string

	RecordCacheTTL  time.Duration
	WarmCache       bool
	WarmConcurrency int

	Redis RedisConfig
}

// RedisConfig configures the optional shared record cache.
// An empty URL keeps records in process memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultRecordCacheTTL bounds how long a resolved record is served from cache.
// The tables are static, so this only matters when the zone database is swapped.
const DefaultRecordCacheTTL = 24 * time.Hour

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            envString("COUNTRY_SERVICE_ADDR", ":8080"),
		LogLevel:        envString("LOG_LEVEL", "info"),
		LogFormat:       envString("LOG_FORMAT", "json"),
		ZoneTabPath:     os.Getenv("ZONE_TAB_PATH"),
		RecordCacheTTL:  envDuration("RECORD_CACHE_TTL", DefaultRecordCacheTTL),
		WarmCache:       os.Getenv("WARM_CACHE") == "true",
		WarmConcurrency: envInt("WARM_CONCURRENCY", 8),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt falls back on missing, malformed and non-positive values.
func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
