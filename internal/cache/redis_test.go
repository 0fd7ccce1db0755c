// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pdiddy/spaceper/pkg/types"
)

// startRedis runs a throwaway Redis container and returns its host:port.
func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	ctx := context.Background()

	redisC, err := tcRedis.RunContainer(ctx, testcontainers.WithWaitStrategy(wait.ForListeningPort("6379/tcp")))
	require.NoError(t, err, "redis container")
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err, "redis host")
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err, "redis port")
	return net.JoinHostPort(host, port.Port())
}

func TestRedis_Integration(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	r, err := NewRedis(ctx, types.CacheConfig{RedisAddr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	raw := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = raw.Close() })

	t.Run("miss", func(t *testing.T) {
		got, ok, err := r.Get(ctx, "search:10:true:absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("round trip", func(t *testing.T) {
		key := SearchKey("bone loss", 10, true)
		require.NoError(t, r.Set(ctx, key, sampleHits(), time.Minute))

		got, ok, err := r.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, sampleHits(), got)

		n, err := raw.Exists(ctx, keyPrefix+key).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, "stored under the namespaced key")

		ttl, err := raw.TTL(ctx, keyPrefix+key).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("empty hits", func(t *testing.T) {
		key := SearchKey("nothing", 10, true)
		require.NoError(t, r.Set(ctx, key, nil, time.Minute))

		got, ok, err := r.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("non-positive ttl stores nothing", func(t *testing.T) {
		key := SearchKey("no ttl", 10, true)
		require.NoError(t, r.Set(ctx, key, sampleHits(), 0))

		_, ok, err := r.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expiry", func(t *testing.T) {
		key := SearchKey("short lived", 10, true)
		require.NoError(t, r.Set(ctx, key, sampleHits(), 500*time.Millisecond))

		_, ok, err := r.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Eventually(t, func() bool {
			_, ok, err := r.Get(ctx, key)
			return err == nil && !ok
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("corrupt value", func(t *testing.T) {
		key := SearchKey("corrupt", 10, true)
		require.NoError(t, raw.Set(ctx, keyPrefix+key, "not json", time.Minute).Err())

		_, ok, err := r.Get(ctx, key)
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("factory", func(t *testing.T) {
		c, err := New(ctx, types.CacheConfig{Backend: types.CacheRedis, RedisAddr: addr})
		require.NoError(t, err)
		assert.IsType(t, &Redis{}, c)
		assert.NoError(t, c.Close())
	})
}
