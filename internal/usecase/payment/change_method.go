package payment

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// ChangePaymentMethod binds another payment method of the same merchant to an unfinished transaction.
// Switching to another rail deletes the sub-requests of the old rail in the same database transaction.
func (uc *DefaultPaymentUsecase) ChangePaymentMethod(ctx context.Context, orderID, methodID string) (*domain.Transaction, error) {
	tx, err := uc.Transactions.GetTransactionByExternalOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tx.Status.IsTerminal() {
		return nil, domain.ErrTransactionFinished
	}
	if tx.MethodID() == methodID {
		return tx, nil
	}

	next, err := uc.Catalog.GetPaymentMethodByID(ctx, methodID)
	if err != nil {
		return nil, err
	}
	if !next.IsActive || (tx.MerchantID != "" && next.MerchantID != tx.MerchantID) {
		return nil, domain.ErrPaymentMethodNotAllowed
	}

	var purge *domain.BaseMethodType
	if tx.MethodID() != "" {
		previous, err := uc.Catalog.GetPaymentMethodByID(ctx, tx.MethodID())
		if err != nil {
			return nil, err
		}
		if previous.BaseType != next.BaseType {
			old := previous.BaseType
			purge = &old
		}
	}

	if err := uc.Transactions.SwitchPaymentMethod(ctx, tx.ID, methodID, purge); err != nil {
		return nil, err
	}
	if purge != nil {
		slog.Info("payment rail switched", "transaction_id", tx.ID, "from", *purge, "to", next.BaseType)
	}

	tx.PaymentMethodID = &methodID
	return tx, nil
}
