// Package settlement runs the hold based secondary rail: hold initialization, hold status webhooks and release.
package settlement

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const rail = "hold"

//go:generate mockgen -destination=../../mocks/settlement_usecase_mock.go -package=mocks . SettlementUsecase

type SettlementUsecase interface {
	InitializeHold(ctx context.Context, airlink *domain.Airlink, merchant *domain.Merchant, payerPhone string) (string, error)
	ConfirmHold(ctx context.Context, reference string, hook Webhook) (bool, error)
	RequestUnhold(ctx context.Context, orderID string) error
	Unhold(ctx context.Context, transactionID string) error
}

// Webhook is the hold status push of the hold gateway.
type Webhook struct {
	Code          string
	ReceiptNumber string
}

// HoldOutcome maps a hold gateway status code to the transaction status it settles on.
// Unknown codes report false.
func HoldOutcome(code string) (domain.TransactionStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "SUCCESS", "HOLD":
		return domain.TransactionStatusCompleted, true
	case "CANCELLED":
		return domain.TransactionStatusCanceled, true
	}
	return "", false
}

type DefaultSettlementUsecase struct {
	Transactions domain.TransactionRepository
	Gateway      domain.HoldGateway
	Tasks        domain.TaskQueue
	Metrics      *metrics.FulfillmentMetrics
}

func NewDefaultSettlementUsecase(
	transactions domain.TransactionRepository,
	gateway domain.HoldGateway,
	tasks domain.TaskQueue,
	m *metrics.FulfillmentMetrics,
) *DefaultSettlementUsecase {
	return &DefaultSettlementUsecase{
		Transactions: transactions,
		Gateway:      gateway,
		Tasks:        tasks,
		Metrics:      m,
	}
}

// InitializeHold reserves the airlink total with the hold gateway and returns the hold reference.
func (uc *DefaultSettlementUsecase) InitializeHold(ctx context.Context, airlink *domain.Airlink, merchant *domain.Merchant, payerPhone string) (string, error) {
	total := airlink.TotalPrice()
	reference, err := uc.Gateway.InitHold(ctx, domain.HoldInit{
		Amount:      total,
		Description: airlink.Name,
		PayerPhone:  payerPhone,
		Merchant:    *merchant,
		Links: []domain.HoldLink{{
			ImageURL:  airlink.ImageURL,
			OrderURL:  airlink.PublicURL,
			OrderName: airlink.Name,
			Price:     total,
		}},
	})
	if err != nil {
		return "", err
	}
	slog.Info("hold initialized", "airlink_id", airlink.ID, "reference", reference)
	return reference, nil
}

// ConfirmHold applies a hold status push to the transaction holding reference. Unknown status
// codes and unknown references are ignored; the result reports whether a transition happened.
// A completed hold queues the commerce sync until the transaction is synced, so a redelivered
// webhook recovers a lost finalize.
func (uc *DefaultSettlementUsecase) ConfirmHold(ctx context.Context, reference string, hook Webhook) (bool, error) {
	target, ok := HoldOutcome(hook.Code)
	if !ok {
		uc.Metrics.RecordWebhook(rail, "ignored")
		slog.Info("hold webhook status ignored", "reference", reference, "code", hook.Code)
		return false, nil
	}

	tx, err := uc.Transactions.GetTransactionByHoldReference(ctx, reference)
	if errors.Is(err, domain.ErrNotFound) {
		uc.Metrics.RecordWebhook(rail, "unknown")
		slog.Info("hold webhook for unknown reference", "reference", reference)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	applied, err := uc.Transactions.ApplyHoldStatus(ctx, reference, target, hook.ReceiptNumber)
	if err != nil {
		return false, err
	}
	if applied {
		uc.Metrics.RecordTransition(rail, string(target))
	}
	uc.Metrics.RecordWebhook(rail, string(target))

	completed := target == domain.TransactionStatusCompleted &&
		(applied || tx.Status == domain.TransactionStatusCompleted)
	if completed && !tx.Synced {
		if err := uc.Tasks.Submit(ctx, domain.TaskFinalizeTransaction, domain.TransactionTask{TransactionID: tx.ID}); err != nil {
			return applied, err
		}
	}
	return applied, nil
}
