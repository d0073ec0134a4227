// Package idempotency runs a non-idempotent operation at most once per business key
// within the cache window, using a distributed lock and a short-lived result cache.
package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

var ErrKeyBusy = domain.NewError(domain.ErrBusy, "a request with the same key is still in progress, try again")

// Key projects caller business fields onto the cache and lock namespaces.
type Key interface {
	CacheKey(prefix string) string
	LockKey() string
}

// OrderKey identifies an order creation intent: one buyer purchasing one airlink.
type OrderKey struct {
	Phone     string
	AirlinkID string
}

func (k OrderKey) CacheKey(prefix string) string {
	return fmt.Sprintf("%s%s:%s", prefix, k.Phone, k.AirlinkID)
}

func (k OrderKey) LockKey() string {
	return fmt.Sprintf("order:idempotency:%s:%s", k.Phone, k.AirlinkID)
}

type Options struct {
	CachePrefix     string
	CacheTTL        time.Duration
	LockTimeout     time.Duration
	BlockingTimeout time.Duration
	RetryDelay      time.Duration
}

type Guard struct {
	Cache   domain.Cache
	Locker  domain.Locker
	Options Options
	Metrics *metrics.FulfillmentMetrics
}

func NewGuard(cache domain.Cache, locker domain.Locker, opts Options, m *metrics.FulfillmentMetrics) *Guard {
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 100 * time.Millisecond
	}
	return &Guard{Cache: cache, Locker: locker, Options: opts, Metrics: m}
}

// Execute returns the cached result for key or runs op under the key's lock and caches what it returns.
// A failed op caches nothing. Lock contention past the blocking timeout returns ErrKeyBusy.
func Execute[T any](ctx context.Context, g *Guard, key Key, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	cacheKey := key.CacheKey(g.Options.CachePrefix)

	if cached, ok, err := lookup[T](ctx, g, cacheKey); err != nil {
		g.Metrics.RecordIdempotency("error")
		return zero, err
	} else if ok {
		g.Metrics.RecordIdempotency("hit")
		return cached, nil
	}

	lock, err := g.acquire(ctx, key.LockKey())
	if err != nil {
		return zero, err
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("idempotency lock release failed", "lock_key", key.LockKey(), "error", err)
		}
	}()

	if cached, ok, err := lookup[T](ctx, g, cacheKey); err != nil {
		g.Metrics.RecordIdempotency("error")
		return zero, err
	} else if ok {
		g.Metrics.RecordIdempotency("hit")
		return cached, nil
	}

	g.Metrics.RecordIdempotency("miss")
	result, err := op(ctx)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		slog.Error("idempotency result is not serializable", "cache_key", cacheKey, "error", err)
		return result, nil
	}
	if err := g.Cache.Set(ctx, cacheKey, raw, g.Options.CacheTTL); err != nil {
		slog.Error("idempotency result was not cached", "cache_key", cacheKey, "error", err)
	}
	return result, nil
}

func lookup[T any](ctx context.Context, g *Guard, cacheKey string) (T, bool, error) {
	var out T
	raw, ok, err := g.Cache.Get(ctx, cacheKey)
	if err != nil {
		return out, false, fmt.Errorf("idempotency cache read: %w", err)
	}
	if !ok {
		return out, false, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Warn("idempotency cache entry is corrupted", "cache_key", cacheKey, "error", err)
		return out, false, nil
	}
	return out, true, nil
}

func (g *Guard) acquire(ctx context.Context, lockKey string) (domain.Lock, error) {
	deadline := time.Now().Add(g.Options.BlockingTimeout)
	for {
		lock, ok, err := g.Locker.TryLock(ctx, lockKey, g.Options.LockTimeout)
		if err != nil {
			g.Metrics.RecordIdempotency("error")
			return nil, fmt.Errorf("idempotency lock: %w", err)
		}
		if ok {
			return lock, nil
		}
		if !time.Now().Before(deadline) {
			g.Metrics.RecordIdempotency("busy")
			return nil, ErrKeyBusy
		}

		timer := time.NewTimer(g.Options.RetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
