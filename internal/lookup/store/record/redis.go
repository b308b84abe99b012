package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"isocountry/internal/lookup/models"
	"isocountry/pkg/platform/sentinel"
)

// keyPrefix namespaces cached records; the suffix is the Alpha-2 code.
const keyPrefix = "isocountry:record:"

// Redis is a shared record cache for multi-instance deployments.
// Records are stored as JSON with SET ... EX.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis constructs a Redis-backed record cache.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Get returns the record cached for alpha2. A missing key is
// sentinel.ErrNotFound; connection failures wrap sentinel.ErrUnavailable.
func (c *Redis) Get(ctx context.Context, alpha2 string) (*models.Record, error) {
	raw, err := c.client.Get(ctx, keyPrefix+alpha2).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("record %s: %w", alpha2, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w: %w", alpha2, sentinel.ErrUnavailable, err)
	}

	var rec models.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", alpha2, err)
	}
	return &rec, nil
}

// Put stores rec under its Alpha2 code for ttl.
func (c *Redis) Put(ctx context.Context, rec *models.Record, ttl time.Duration) error {
	if rec == nil || rec.Alpha2 == "" {
		return fmt.Errorf("record without alpha2 code")
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", rec.Alpha2, err)
	}
	if err := c.client.Set(ctx, keyPrefix+rec.Alpha2, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set record %s: %w: %w", rec.Alpha2, sentinel.ErrUnavailable, err)
	}
	return nil
}
