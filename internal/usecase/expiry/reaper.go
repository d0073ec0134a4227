// Package expiry cancels hold transactions that were never paid.
package expiry

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const DefaultMaxAge = 24 * time.Hour

type Reaper struct {
	Transactions domain.TransactionRepository
	MaxAge       time.Duration
	Metrics      *metrics.FulfillmentMetrics
	now          func() time.Time
}

func NewReaper(transactions domain.TransactionRepository, maxAge time.Duration, m *metrics.FulfillmentMetrics) *Reaper {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Reaper{Transactions: transactions, MaxAge: maxAge, Metrics: m, now: time.Now}
}

// Sweep cancels every NEW or IN_PROGRESS transaction with a hold reference older than MaxAge.
// A transaction that fails to cancel is logged and skipped. It returns how many were canceled.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	expired, err := r.Transactions.FindExpiredHolds(ctx, r.now().Add(-r.MaxAge))
	if err != nil {
		return 0, err
	}

	canceled := 0
	for _, tx := range expired {
		if ctx.Err() != nil {
			break
		}
		applied, err := r.Transactions.UpdateTransactionStatus(ctx, tx.ID, domain.TransactionStatusCanceled)
		if err != nil {
			slog.Error("failed to cancel expired transaction", "transaction_id", tx.ID, "error", err)
			continue
		}
		if applied {
			canceled++
			r.Metrics.RecordTransition("hold", string(domain.TransactionStatusCanceled))
		}
	}

	r.Metrics.RecordExpiredCanceled(canceled)
	if canceled > 0 {
		slog.Info("expired hold transactions canceled", "count", canceled, "found", len(expired))
	}
	return canceled, nil
}
