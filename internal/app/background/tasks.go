package background

import (
	"context"
	"log/slog"
	"time"
)

const DefaultSweepInterval = 5 * time.Minute

// Sweeper is a periodic job such as the expiry reaper.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type BackgroundTasks struct {
	Reaper   Sweeper
	Interval time.Duration
}

func NewBackgroundTasks(reaper Sweeper, interval time.Duration) *BackgroundTasks {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &BackgroundTasks{Reaper: reaper, Interval: interval}
}

// StartAll launches every periodic job and returns immediately.
func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startExpiredHoldsCancel(ctx)
}

func (bt *BackgroundTasks) startExpiredHoldsCancel(ctx context.Context) {
	ticker := time.NewTicker(bt.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.Reaper.Sweep(ctx); err != nil {
				slog.Error("expired holds sweep failed", "error", err)
			}
		}
	}
}
