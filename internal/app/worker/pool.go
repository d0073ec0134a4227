package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/kafka"
)

type Subscriber interface {
	Run(ctx context.Context, handle kafka.TaskHandler) error
}

// Run consumes with every subscriber concurrently and returns when all of them stopped.
func Run(ctx context.Context, d *Dispatcher, subscribers ...Subscriber) {
	var wg sync.WaitGroup
	for i, sub := range subscribers {
		i, sub := i, sub
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sub.Run(ctx, d.Handle); err != nil {
				slog.Error("task consumer stopped", "worker", i, "error", err)
			}
		}()
	}
	wg.Wait()
}
