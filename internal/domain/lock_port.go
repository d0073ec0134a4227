package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=lock_port.go -destination=../mocks/lock_port_mock.go -package=mocks

// Cache stores short-lived serialized results shared across instances.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Lock interface {
	Release(ctx context.Context) error
}

// Locker hands out distributed mutual-exclusion locks that expire after ttl.
type Locker interface {
	// TryLock makes a single attempt; ok is false when another holder owns key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (lock Lock, ok bool, err error)
}
