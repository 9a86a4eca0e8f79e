package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tutorlinkhq/tutor-marketplace/internal/config"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

// AvailabilityCache keeps a tutor's full weekly schedule in redis so the
// public availability endpoint does not hit postgres on every read. The
// replace operation invalidates the key; entries otherwise expire by TTL.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(cfg *config.Config, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
		ttl: ttl,
	}
}

func (c *AvailabilityCache) Get(ctx context.Context, tutorID string) ([]models.Availability, bool, error) {
	data, err := c.client.Get(ctx, availabilityKey(tutorID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var slots []models.Availability
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, tutorID string, slots []models.Availability) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(tutorID), payload, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, tutorID string) error {
	return c.client.Del(ctx, availabilityKey(tutorID)).Err()
}

func availabilityKey(tutorID string) string {
	return fmt.Sprintf("cache:availability:%s", tutorID)
}
