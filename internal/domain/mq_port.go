package domain

import (
	"context"
	"encoding/json"
	"time"
)

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(ctx context.Context, topic string, msgs ...Message) error
}

// Background tasks executed by the worker. Delivery is at-least-once, so every handler is idempotent.
const (
	TaskCardInitiate        = "card.initiate"
	TaskCardPoll            = "card.poll"
	TaskFinalizeTransaction = "transaction.finalize"
	TaskLoanApply           = "loan.apply"
	TaskLoanPoll            = "loan.poll"
	TaskSettlementUnhold    = "settlement.unhold"
)

type TransactionTask struct {
	TransactionID string `json:"transaction_id"`
}

func (t TransactionTask) TaskKey() string { return t.TransactionID }

type LoanRequestTask struct {
	LoanRequestID string `json:"loan_request_id"`
}

func (t LoanRequestTask) TaskKey() string { return t.LoanRequestID }

// KeyedTask payloads are partitioned by their business id so tasks of one entity stay ordered.
type KeyedTask interface {
	TaskKey() string
}

// TaskEnvelope is the wire form of a queued task.
type TaskEnvelope struct {
	Task       string          `json:"task"`
	Payload    json.RawMessage `json:"payload"`
	Attempt    int             `json:"attempt"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	NotBefore  *time.Time      `json:"not_before,omitempty"`
}

//go:generate mockgen -source=mq_port.go -destination=../mocks/mq_port_mock.go -package=mocks

type TaskQueue interface {
	Submit(ctx context.Context, task string, payload any) error
}
