package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var (
	_ domain.PublisherPort = (*TaskPublisher)(nil)
	_ domain.TaskQueue     = (*TaskPublisher)(nil)
)

// TaskPublisher puts background tasks on the tasks topic, delayed retries on its retry topic
// and failed ones on its dead-letter topic.
type TaskPublisher struct {
	writer     messageWriter
	topic      string
	retry      string
	deadLetter string
	now        func() time.Time
}

func NewTaskPublisher(brokers []string, topic string) *TaskPublisher {
	return newTaskPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}, topic)
}

func newTaskPublisher(w messageWriter, topic string) *TaskPublisher {
	return &TaskPublisher{
		writer:     w,
		topic:      topic,
		retry:      RetryTopic(topic),
		deadLetter: DeadLetterTopic(topic),
		now:        time.Now,
	}
}

func DeadLetterTopic(topic string) string {
	return topic + ".dlq"
}

func RetryTopic(topic string) string {
	return topic + ".retry"
}

func (p *TaskPublisher) Publish(ctx context.Context, topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Topic: topic,
			Key:   m.Key,
			Value: m.Value,
			Time:  p.now(),
		})
	}
	return p.writer.WriteMessages(ctx, km...)
}

// Submit enqueues task with its first attempt number.
func (p *TaskPublisher) Submit(ctx context.Context, task string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", task, err)
	}
	var key string
	if keyed, ok := payload.(domain.KeyedTask); ok {
		key = keyed.TaskKey()
	}
	return p.publishEnvelope(ctx, p.topic, []byte(key), domain.TaskEnvelope{
		Task:       task,
		Payload:    raw,
		Attempt:    1,
		EnqueuedAt: p.now(),
	})
}

// Retry requeues env with the next attempt number. A positive delay parks it on the retry topic
// until then; otherwise it goes straight back to the tasks topic.
func (p *TaskPublisher) Retry(ctx context.Context, key []byte, env domain.TaskEnvelope, delay time.Duration) error {
	env.Attempt++
	env.EnqueuedAt = p.now()
	if delay <= 0 {
		env.NotBefore = nil
		return p.publishEnvelope(ctx, p.topic, key, env)
	}
	due := env.EnqueuedAt.Add(delay)
	env.NotBefore = &due
	return p.publishEnvelope(ctx, p.retry, key, env)
}

func (p *TaskPublisher) DeadLetter(ctx context.Context, key []byte, env domain.TaskEnvelope) error {
	return p.publishEnvelope(ctx, p.deadLetter, key, env)
}

func (p *TaskPublisher) Close() error {
	return p.writer.Close()
}

func (p *TaskPublisher) publishEnvelope(ctx context.Context, topic string, key []byte, env domain.TaskEnvelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", env.Task, err)
	}
	if err := p.Publish(ctx, topic, domain.Message{Key: key, Value: value}); err != nil {
		return fmt.Errorf("publish %s to %s: %w", env.Task, topic, err)
	}
	return nil
}
