package card

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// PollStatus asks the gateway how the payment ended and settles the transaction on a final answer.
// A completed transaction gets its finalize task queued.
func (uc *DefaultCardUsecase) PollStatus(ctx context.Context, transactionID string) (domain.TransactionStatus, error) {
	tx, err := uc.Transactions.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return "", err
	}
	if tx.Status.IsTerminal() {
		return tx.Status, nil
	}

	req, err := uc.CardRequests.GetCardRequestByTransactionID(ctx, tx.ID)
	if err != nil {
		return "", err
	}
	if req.GatewayPaymentID == "" {
		slog.Info("card poll skipped, payment was not initiated", "transaction_id", tx.ID)
		return tx.Status, nil
	}

	method, err := uc.cardMethod(ctx, tx)
	if err != nil {
		return "", err
	}

	result, err := uc.Gateway.PaymentStatus(ctx, domain.CardStatusRequest{
		OrderID:         tx.ID,
		MerchantID:      method.Card.GatewayMerchantID,
		PaymentID:       req.GatewayPaymentID,
		EncryptedSecret: method.Card.EncryptedSecretKey,
	})
	if err != nil {
		return "", err
	}

	target, final := domain.CardPaymentOutcome(result.PaymentStatus)
	if !final {
		slog.Debug("card payment still processing", "transaction_id", tx.ID, "provider_status", result.PaymentStatus)
		return tx.Status, nil
	}

	if target == domain.TransactionStatusCompleted {
		req.Status = domain.CardRequestStatusSuccess
	} else {
		req.Status = domain.CardRequestStatusFailed
	}
	if err := uc.CardRequests.UpdateCardRequest(ctx, req); err != nil {
		return "", err
	}

	applied, err := uc.transition(ctx, tx, target)
	if err != nil {
		return "", err
	}
	if applied {
		slog.Info("card transaction settled", "transaction_id", tx.ID, "status", target)
	}

	if target == domain.TransactionStatusCompleted {
		if err := uc.Tasks.Submit(ctx, domain.TaskFinalizeTransaction, domain.TransactionTask{TransactionID: tx.ID}); err != nil {
			return "", err
		}
	}
	return target, nil
}
