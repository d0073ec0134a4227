package card

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// IngestCallback records the gateway result on the card request. The transaction status is not
// touched here; a status poll is queued and settles it, so a replayed callback changes nothing twice.
func (uc *DefaultCardUsecase) IngestCallback(ctx context.Context, cardRequestID string, cb domain.CardCallback) (*domain.CardRequest, error) {
	if cb.OrderID == "" {
		uc.Metrics.RecordWebhook(rail, "invalid")
		return nil, domain.ErrInvalidCallback
	}

	req, err := uc.CardRequests.GetCardRequestByID(ctx, cardRequestID)
	if err != nil {
		uc.Metrics.RecordWebhook(rail, "unknown")
		return nil, err
	}
	if req.GatewayOrderID != "" && req.GatewayOrderID != cb.OrderID {
		uc.Metrics.RecordWebhook(rail, "invalid")
		slog.Warn("card callback order id mismatch", "card_request_id", req.ID, "expected", req.GatewayOrderID, "got", cb.OrderID)
		return nil, domain.ErrInvalidCallback
	}

	result := cb.Result
	req.GatewayOrderID = cb.OrderID
	req.GatewayReference = cb.Reference
	req.CardPan = cb.CardPan
	req.PaymentDate = cb.PaymentDate
	req.ResultCode = &result
	req.CanReject = cb.CanReject
	req.FullAmount = cb.FullAmount
	req.NetAmount = cb.NetAmount
	req.Status = domain.CardStatusFromResultCode(cb.Result)

	if err := uc.CardRequests.UpdateCardRequest(ctx, req); err != nil {
		return nil, err
	}
	uc.Metrics.RecordWebhook(rail, string(req.Status))

	if err := uc.Tasks.Submit(ctx, domain.TaskCardPoll, domain.TransactionTask{TransactionID: req.TransactionID}); err != nil {
		slog.Error("card poll was not queued after callback", "transaction_id", req.TransactionID, "error", err)
	}
	return req, nil
}
