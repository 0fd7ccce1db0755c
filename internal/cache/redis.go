// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pdiddy/spaceper/pkg/types"
)

// keyPrefix namespaces every key this package writes.
const keyPrefix = "spaceper:"

// Redis stores hits as JSON strings with a Redis-side expiry.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to addr and verifies the connection with PING.
func NewRedis(ctx context.Context, cfg types.CacheConfig) (*Redis, error) {
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("redis cache requires cache.redis_addr")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed (%s): %w", cfg.RedisAddr, err)
	}
	log.Printf("[CACHE] redis connected: %s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return &Redis{client: client}, nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, key string) ([]types.RawHit, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var hits []types.RawHit
	if err := json.Unmarshal(val, &hits); err != nil {
		return nil, false, fmt.Errorf("decoding cached hits: %w", err)
	}
	return hits, true, nil
}

// Set implements Cache. A non-positive ttl stores nothing.
func (r *Redis) Set(ctx context.Context, key string, hits []types.RawHit, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if hits == nil {
		hits = []types.RawHit{}
	}
	data, err := json.Marshal(hits)
	if err != nil {
		return fmt.Errorf("encoding hits: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close implements Cache.
func (r *Redis) Close() error {
	return r.client.Close()
}

// New builds the cache selected by cfg.Backend.
func New(ctx context.Context, cfg types.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case types.CacheNone, "":
		return Nop{}, nil
	case types.CacheMemory:
		return NewMemory(0), nil
	case types.CacheRedis:
		r, err := NewRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q: use none, memory, or redis", cfg.Backend)
	}
}
