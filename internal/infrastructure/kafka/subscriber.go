package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TaskHandler processes one delivered task. The message is committed after it returns, whatever the result.
type TaskHandler func(ctx context.Context, key []byte, env domain.TaskEnvelope)

type TaskSubscriber struct {
	reader messageReader
}

func NewTaskSubscriber(brokers []string, topic, groupID string) *TaskSubscriber {
	return &TaskSubscriber{reader: kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})}
}

// Run fetches until ctx is canceled. Undecodable messages are logged and committed.
func (s *TaskSubscriber) Run(ctx context.Context, handle TaskHandler) error {
	for {
		m, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		var env domain.TaskEnvelope
		if err := json.Unmarshal(m.Value, &env); err != nil {
			slog.Error("drop undecodable task", "offset", m.Offset, "partition", m.Partition, "error", err)
		} else {
			handle(ctx, m.Key, env)
		}

		if err := s.reader.CommitMessages(context.WithoutCancel(ctx), m); err != nil {
			slog.Error("commit task offset", "task", env.Task, "offset", m.Offset, "error", err)
		}
	}
}

func (s *TaskSubscriber) Close() error {
	return s.reader.Close()
}
