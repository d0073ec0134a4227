package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

const relayBackoff = time.Second

// Relay moves parked retries back to the tasks topic once they are due. It is the TaskHandler
// of the retry topic consumer, so only that consumer waits on a delay.
type Relay struct {
	publisher *TaskPublisher
	now       func() time.Time
	after     func(time.Duration) <-chan time.Time
}

func NewRelay(p *TaskPublisher) *Relay {
	return &Relay{publisher: p, now: time.Now, after: time.After}
}

// Handle blocks until env is due and republishes it. A failed publish is retried until ctx ends.
func (r *Relay) Handle(ctx context.Context, key []byte, env domain.TaskEnvelope) {
	if env.NotBefore != nil {
		if wait := env.NotBefore.Sub(r.now()); wait > 0 {
			select {
			case <-ctx.Done():
				return
			case <-r.after(wait):
			}
		}
	}
	env.NotBefore = nil

	for {
		err := r.publisher.publishEnvelope(context.WithoutCancel(ctx), r.publisher.topic, key, env)
		if err == nil {
			return
		}
		slog.Error("relay retry to tasks topic", "task", env.Task, "attempt", env.Attempt, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-r.after(relayBackoff):
		}
	}
}
