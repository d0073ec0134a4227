// Package completion pushes completed payments back to the commerce system exactly once.
package completion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

//go:generate mockgen -destination=../../mocks/completion_usecase_mock.go -package=mocks . CompletionUsecase

type CompletionUsecase interface {
	Finalize(ctx context.Context, transactionID string) (bool, error)
}

type DefaultCompletionUsecase struct {
	Transactions domain.TransactionRepository
	Catalog      domain.CatalogRepository
	Commerce     domain.CommerceGateway
	Metrics      *metrics.FulfillmentMetrics
}

func NewDefaultCompletionUsecase(
	transactions domain.TransactionRepository,
	catalog domain.CatalogRepository,
	commerce domain.CommerceGateway,
	m *metrics.FulfillmentMetrics,
) *DefaultCompletionUsecase {
	return &DefaultCompletionUsecase{
		Transactions: transactions,
		Catalog:      catalog,
		Commerce:     commerce,
		Metrics:      m,
	}
}

// Finalize pushes the completion of a COMPLETED, not yet synced transaction and marks it synced.
// It reports false without calling the commerce system when there is nothing to push.
func (uc *DefaultCompletionUsecase) Finalize(ctx context.Context, transactionID string) (bool, error) {
	current, err := uc.Transactions.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return false, err
	}
	if current.Status != domain.TransactionStatusCompleted || current.Synced {
		return false, nil
	}
	rail := uc.railOf(ctx, current)

	pushed, err := uc.Transactions.SyncCompleted(ctx, transactionID, func(tx *domain.Transaction) error {
		return uc.Commerce.PushCompletion(ctx, domain.CompletionInput{
			OrderID:  tx.ExternalOrderID,
			Amount:   tx.Amount,
			Currency: tx.Currency,
			Note:     fmt.Sprintf("Transaction id %s, payment method %s", tx.ID, rail),
		})
	})
	if err != nil {
		slog.Error("completion push failed", "transaction_id", transactionID, "error", err)
		return false, err
	}
	if pushed {
		uc.Metrics.RecordCompletionSynced(string(rail))
		slog.Info("completion pushed to commerce", "transaction_id", transactionID, "rail", rail)
	}
	return pushed, nil
}

func (uc *DefaultCompletionUsecase) railOf(ctx context.Context, tx *domain.Transaction) domain.BaseMethodType {
	if tx.MethodID() == "" {
		return ""
	}
	method, err := uc.Catalog.GetPaymentMethodByID(ctx, tx.MethodID())
	if err != nil {
		slog.Warn("payment method of completed transaction not found", "transaction_id", tx.ID, "error", err)
		return ""
	}
	return method.BaseType
}
