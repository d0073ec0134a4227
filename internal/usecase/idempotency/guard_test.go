package idempotency_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/cache"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/idempotency"
)

type orderResult struct {
	OrderID string `json:"order_id"`
}

func newGuard(t *testing.T, opts idempotency.Options) (*idempotency.Guard, *miniredis.Miniredis, *cache.RedisLocker) {
	t.Helper()
	srv := miniredis.RunT(t)
	client, err := cache.Connect(context.Background(), srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	locker := cache.NewRedisLocker(client)
	return idempotency.NewGuard(cache.NewRedisCache(client), locker, opts, nil), srv, locker
}

func defaultOptions() idempotency.Options {
	return idempotency.Options{
		CachePrefix:     "order:result:",
		CacheTTL:        30 * time.Second,
		LockTimeout:     10 * time.Second,
		BlockingTimeout: 5 * time.Second,
		RetryDelay:      5 * time.Millisecond,
	}
}

func TestOrderKey(t *testing.T) {
	key := idempotency.OrderKey{Phone: "+77010000000", AirlinkID: "a-1"}
	assert.Equal(t, "p:+77010000000:a-1", key.CacheKey("p:"))
	assert.Equal(t, "order:idempotency:+77010000000:a-1", key.LockKey())
}

func TestExecute_ConcurrentCallersRunOperationOnce(t *testing.T) {
	guard, _, _ := newGuard(t, defaultOptions())
	key := idempotency.OrderKey{Phone: "+77010000000", AirlinkID: "a-1"}

	var calls atomic.Int32
	op := func(context.Context) (orderResult, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return orderResult{OrderID: "order-1"}, nil
	}

	const callers = 16
	var wg sync.WaitGroup
	results := make([]orderResult, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = idempotency.Execute(context.Background(), guard, key, op)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "order-1", results[i].OrderID)
	}
}

func TestExecute_FailureIsNotCached(t *testing.T) {
	guard, srv, _ := newGuard(t, defaultOptions())
	key := idempotency.OrderKey{Phone: "+77010000000", AirlinkID: "a-2"}

	boom := errors.New("commerce rejected checkout")
	_, err := idempotency.Execute(context.Background(), guard, key, func(context.Context) (orderResult, error) {
		return orderResult{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, srv.Exists(key.LockKey()), "lock released after failure")
	assert.False(t, srv.Exists(key.CacheKey("order:result:")))

	got, err := idempotency.Execute(context.Background(), guard, key, func(context.Context) (orderResult, error) {
		return orderResult{OrderID: "order-2"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "order-2", got.OrderID)
	assert.True(t, srv.Exists(key.CacheKey("order:result:")))
}

func TestExecute_CacheHitSkipsLock(t *testing.T) {
	guard, srv, _ := newGuard(t, defaultOptions())
	key := idempotency.OrderKey{Phone: "+77010000000", AirlinkID: "a-3"}
	require.NoError(t, srv.Set(key.CacheKey("order:result:"), `{"order_id":"cached"}`))
	// a held lock would block a miss, so a hit must not touch it
	require.NoError(t, srv.Set(key.LockKey(), "someone-else"))

	got, err := idempotency.Execute(context.Background(), guard, key, func(context.Context) (orderResult, error) {
		t.Fatal("operation must not run on a cache hit")
		return orderResult{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cached", got.OrderID)
}

func TestExecute_BusyAfterBlockingTimeout(t *testing.T) {
	opts := defaultOptions()
	opts.BlockingTimeout = 30 * time.Millisecond
	guard, _, locker := newGuard(t, opts)
	key := idempotency.OrderKey{Phone: "+77010000000", AirlinkID: "a-4"}

	held, ok, err := locker.TryLock(context.Background(), key.LockKey(), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	defer held.Release(context.Background())

	_, err = idempotency.Execute(context.Background(), guard, key, func(context.Context) (orderResult, error) {
		return orderResult{OrderID: "never"}, nil
	})
	assert.ErrorIs(t, err, idempotency.ErrKeyBusy)
	assert.ErrorIs(t, err, domain.ErrBusy)
}

func TestExecute_CacheUnavailableFailsClosed(t *testing.T) {
	guard, srv, _ := newGuard(t, defaultOptions())
	srv.Close()

	ran := false
	_, err := idempotency.Execute(context.Background(), guard, idempotency.OrderKey{Phone: "p", AirlinkID: "a"},
		func(context.Context) (orderResult, error) {
			ran = true
			return orderResult{}, nil
		})
	assert.Error(t, err)
	assert.False(t, ran)
}
