package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/config"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return s, client
}

func TestNewAndPing(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	client := New(config.RedisConfig{Addr: addr})
	defer client.Close()

	assert.NoError(t, Ping(context.Background(), client))

	// Addr is only valid while the server runs
	s.Close()
	err := Ping(context.Background(), client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping "+addr)
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRateLimiter(client, 3, time.Minute, "test")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	s, client := setupTestRedis(t)
	limiter := NewRateLimiter(client, 1, time.Second, "test")
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_KeyHasPrefixAndTTL(t *testing.T) {
	s, client := setupTestRedis(t)
	limiter := NewRateLimiter(client, 5, 30*time.Second, "rpc")

	_, err := limiter.Allow(context.Background(), "1.2.3.4")
	require.NoError(t, err)

	assert.True(t, s.Exists("rpc:1.2.3.4"))
	assert.Equal(t, 30*time.Second, s.TTL("rpc:1.2.3.4"))
}

func TestRateLimiter_RedisDown(t *testing.T) {
	s, client := setupTestRedis(t)
	limiter := NewRateLimiter(client, 5, time.Minute, "")
	s.Close()

	_, err := limiter.Allow(context.Background(), "client")
	assert.Error(t, err)
}
