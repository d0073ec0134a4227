// Package worker executes queued fulfillment tasks.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/card"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/completion"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/loan"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/settlement"
)

const DefaultMaxAttempts = 5

var (
	errPending     = errors.New("task is still pending")
	errUnknownTask = errors.New("unknown task")
)

// Requeuer puts a failed delivery back on the queue after delay or parks it.
type Requeuer interface {
	Retry(ctx context.Context, key []byte, env domain.TaskEnvelope, delay time.Duration) error
	DeadLetter(ctx context.Context, key []byte, env domain.TaskEnvelope) error
}

type Dispatcher struct {
	Cards       card.CardUsecase
	Loans       loan.LoanUsecase
	Completion  completion.CompletionUsecase
	Settlement  settlement.SettlementUsecase
	Queue       Requeuer
	MaxAttempts int
	RetryDelay  time.Duration
	Metrics     *metrics.FulfillmentMetrics
}

func NewDispatcher(
	cards card.CardUsecase,
	loans loan.LoanUsecase,
	completion completion.CompletionUsecase,
	settlement settlement.SettlementUsecase,
	queue Requeuer,
	maxAttempts int,
	retryDelay time.Duration,
	m *metrics.FulfillmentMetrics,
) *Dispatcher {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Dispatcher{
		Cards:       cards,
		Loans:       loans,
		Completion:  completion,
		Settlement:  settlement,
		Queue:       queue,
		MaxAttempts: maxAttempts,
		RetryDelay:  retryDelay,
		Metrics:     m,
	}
}

// Handle runs one delivery; attempts count from 1. Transient failures and unfinished polls are requeued with a
// delay until MaxAttempts is reached. Permanent failures go to the dead-letter topic right away. Handle never
// sleeps; the delay is carried by the requeued envelope.
func (d *Dispatcher) Handle(ctx context.Context, key []byte, env domain.TaskEnvelope) {
	started := time.Now()
	log := slog.With("task", env.Task, "key", string(key), "attempt", env.Attempt)

	err := d.dispatch(ctx, env)
	exhausted := env.Attempt >= d.MaxAttempts
	switch {
	case err == nil:
		d.Metrics.RecordTask(env.Task, "done", started)
		return
	case errors.Is(err, errPending) && exhausted:
		log.Info("stop polling, attempts exhausted")
		d.Metrics.RecordTask(env.Task, "exhausted", started)
		return
	case permanent(err) || exhausted:
		log.Error("task failed, dead-lettering", "error", err)
		d.Metrics.RecordTask(env.Task, "dead_letter", started)
		if err := d.Queue.DeadLetter(context.WithoutCancel(ctx), key, env); err != nil {
			log.Error("failed to dead-letter task", "error", err)
		}
		return
	}

	if !errors.Is(err, errPending) {
		log.Warn("task failed, retrying", "error", err)
	}
	d.Metrics.RecordTask(env.Task, "retry", started)
	if err := d.Queue.Retry(context.WithoutCancel(ctx), key, env, d.backoff(env.Attempt)); err != nil {
		log.Error("failed to requeue task", "error", err)
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, env domain.TaskEnvelope) error {
	switch env.Task {
	case domain.TaskCardInitiate:
		return withTransaction(env, func(id string) error {
			_, err := d.Cards.Initiate(ctx, id)
			return err
		})
	case domain.TaskCardPoll:
		return withTransaction(env, func(id string) error {
			status, err := d.Cards.PollStatus(ctx, id)
			if err != nil {
				return err
			}
			if !status.IsTerminal() {
				return errPending
			}
			return nil
		})
	case domain.TaskFinalizeTransaction:
		return withTransaction(env, func(id string) error {
			_, err := d.Completion.Finalize(ctx, id)
			return err
		})
	case domain.TaskSettlementUnhold:
		return withTransaction(env, func(id string) error {
			return d.Settlement.Unhold(ctx, id)
		})
	case domain.TaskLoanApply:
		return withLoanRequest(env, func(id string) error {
			_, err := d.Loans.Apply(ctx, id)
			return err
		})
	case domain.TaskLoanPoll:
		return withLoanRequest(env, func(id string) error {
			req, err := d.Loans.PollOffers(ctx, id)
			if err != nil {
				return err
			}
			if !req.Status.IsFinal() {
				return errPending
			}
			return nil
		})
	}
	return fmt.Errorf("%w: %q", errUnknownTask, env.Task)
}

func withTransaction(env domain.TaskEnvelope, run func(id string) error) error {
	var p domain.TransactionTask
	if err := json.Unmarshal(env.Payload, &p); err != nil || p.TransactionID == "" {
		return domain.NewError(domain.ErrValidation, "malformed transaction task payload")
	}
	return run(p.TransactionID)
}

func withLoanRequest(env domain.TaskEnvelope, run func(id string) error) error {
	var p domain.LoanRequestTask
	if err := json.Unmarshal(env.Payload, &p); err != nil || p.LoanRequestID == "" {
		return domain.NewError(domain.ErrValidation, "malformed loan request task payload")
	}
	return run(p.LoanRequestID)
}

// permanent errors will fail the same way on every retry.
func permanent(err error) bool {
	for _, kind := range []error{
		errUnknownTask,
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrConflict,
		domain.ErrForbidden,
		domain.ErrNotImplemented,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// backoff grows linearly with the attempt that just failed.
func (d *Dispatcher) backoff(attempt int) time.Duration {
	if d.RetryDelay <= 0 {
		return 0
	}
	return d.RetryDelay * time.Duration(max(attempt, 1))
}
