package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// Initiate opens a redirect payment for the transaction and moves it to ACTION_REQUIRED.
// A card request that already holds a redirect URL is not sent to the gateway again.
func (uc *DefaultCardUsecase) Initiate(ctx context.Context, transactionID string) (*domain.CardRequest, error) {
	tx, err := uc.Transactions.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.Status.IsTerminal() {
		slog.Info("card initiate skipped, transaction is finished", "transaction_id", tx.ID, "status", tx.Status)
		return nil, nil
	}

	method, err := uc.cardMethod(ctx, tx)
	if err != nil {
		return nil, err
	}

	req, created, err := uc.CardRequests.GetOrCreateCardRequest(ctx, tx.ID)
	if err != nil {
		return nil, fmt.Errorf("card request for %s: %w", tx.ID, err)
	}

	if !created && req.RedirectURL != "" {
		if _, err := uc.transition(ctx, tx, domain.TransactionStatusActionRequired); err != nil {
			return nil, err
		}
		return req, nil
	}

	callback := uc.Options.callbackURL(req.ID)
	result, err := uc.Gateway.InitPayment(ctx, domain.CardInitRequest{
		OrderID:         tx.ID,
		MerchantID:      method.Card.GatewayMerchantID,
		EncryptedSecret: method.Card.EncryptedSecretKey,
		Amount:          tx.Amount,
		Description:     "Заказ № " + tx.ExternalOrderID,
		ResultURL:       callback,
		SuccessURL:      callback,
		FailureURL:      callback,
	})
	if err != nil {
		slog.Error("card payment init failed", "transaction_id", tx.ID, "card_request_id", req.ID, "error", err)
		return nil, err
	}

	req.RedirectURL = result.RedirectURL
	req.GatewayPaymentID = result.PaymentID
	req.GatewayOrderID = tx.ID
	if err := uc.CardRequests.UpdateCardRequest(ctx, req); err != nil {
		return nil, err
	}

	if _, err := uc.transition(ctx, tx, domain.TransactionStatusActionRequired); err != nil {
		return nil, err
	}

	slog.Info("card payment initiated", "transaction_id", tx.ID, "card_request_id", req.ID, "payment_id", req.GatewayPaymentID)
	return req, nil
}
