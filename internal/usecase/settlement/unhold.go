package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// RequestUnhold queues the release of the hold behind an order.
func (uc *DefaultSettlementUsecase) RequestUnhold(ctx context.Context, orderID string) error {
	tx, err := uc.Transactions.GetTransactionByExternalOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if !tx.HasHold() {
		return domain.ErrNoHold
	}
	return uc.Tasks.Submit(ctx, domain.TaskSettlementUnhold, domain.TransactionTask{TransactionID: tx.ID})
}

// Unhold releases the hold of a transaction. Anything but a confirmed release is an error so the
// caller retries it.
func (uc *DefaultSettlementUsecase) Unhold(ctx context.Context, transactionID string) error {
	tx, err := uc.Transactions.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if !tx.HasHold() {
		return domain.ErrNoHold
	}

	result, err := uc.Gateway.Unhold(ctx, *tx.HoldReference)
	if err != nil {
		return err
	}
	released, err := result.Released()
	if err != nil {
		return err
	}
	if !released {
		slog.Error("hold release rejected", "transaction_id", tx.ID, "status", result.Status, "err_msg", result.ErrMsg)
		return fmt.Errorf("%w: status=%q message=%q", domain.ErrUnholdRejected, result.Status, result.ErrMsg)
	}

	slog.Info("hold released", "transaction_id", tx.ID, "reference", *tx.HoldReference)
	return nil
}
