package cache

import (
	"context"
	"encoding/json"

	"talenthub/config"
	"talenthub/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores profile snapshots as JSON in a shared Redis instance.
// Keys carry no Redis TTL: stale snapshots must remain readable so they can
// render immediately while a background refetch runs.
type RedisCache struct {
	rdb       *redis.Client
	keyPrefix string
}

// NewRedisCache creates a Redis-backed snapshot cache from configuration.
func NewRedisCache(cfg *config.RedisConfig) *RedisCache {
	return &RedisCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		keyPrefix: cfg.KeyPrefix,
	}
}

func (c *RedisCache) key(profileID string) string {
	return c.keyPrefix + profileID
}

// Read returns the stored snapshot or ErrCacheMiss. Corrupt or structurally
// invalid values are deleted and reported as misses.
func (c *RedisCache) Read(ctx context.Context, profileID string) (*repository.ProfileSnapshot, error) {
	s, err := c.rdb.Get(ctx, c.key(profileID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get profile snapshot")
	}

	snap := new(repository.ProfileSnapshot)
	if err := json.Unmarshal([]byte(s), snap); err != nil || !snap.Valid() {
		// data corrupt: treat as miss by deleting
		_ = c.rdb.Del(ctx, c.key(profileID)).Err()

		return nil, repository.ErrCacheMiss
	}
	snap.Record.EnsureArrays()

	return snap, nil
}

// Write replaces the snapshot for the profile.
func (c *RedisCache) Write(ctx context.Context, profileID string, snap *repository.ProfileSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "marshal profile snapshot")
	}

	return errors.Wrap(c.rdb.Set(ctx, c.key(profileID), b, 0).Err(), "redis set profile snapshot")
}

// Invalidate removes the snapshot for the profile.
func (c *RedisCache) Invalidate(ctx context.Context, profileID string) error {
	return errors.Wrap(c.rdb.Del(ctx, c.key(profileID)).Err(), "redis delete profile snapshot")
}
