package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/cache"
)

func connect(t *testing.T) (*miniredis.Miniredis, context.Context, *cache.RedisCache, *cache.RedisLocker) {
	t.Helper()
	srv := miniredis.RunT(t)
	ctx := context.Background()
	client, err := cache.Connect(ctx, srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return srv, ctx, cache.NewRedisCache(client), cache.NewRedisLocker(client)
}

func TestRedisCache_GetSet(t *testing.T) {
	srv, ctx, c, _ := connect(t)

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte(`{"a":1}`), 30*time.Second))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(got))

	srv.FastForward(31 * time.Second)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	srv, ctx, _, locker := connect(t)

	first, ok, err := locker.TryLock(ctx, "lock:a", 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locker.TryLock(ctx, "lock:a", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Release(ctx))

	second, ok, err := locker.TryLock(ctx, "lock:a", 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// an expired lock taken over by another holder is not released by the old one
	srv.FastForward(11 * time.Second)
	third, ok, err := locker.TryLock(ctx, "lock:a", 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	assert.ErrorIs(t, second.Release(ctx), cache.ErrLockLost)
	assert.True(t, srv.Exists("lock:a"))
	require.NoError(t, third.Release(ctx))
	assert.False(t, srv.Exists("lock:a"))
}

func TestConnect_URL(t *testing.T) {
	srv := miniredis.RunT(t)
	client, err := cache.Connect(context.Background(), "redis://"+srv.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = cache.Connect(context.Background(), "redis://%zz")
	assert.Error(t, err)
}
