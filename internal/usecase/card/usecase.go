// Package card drives the redirect card rail: payment initiation, gateway callbacks and status polling.
package card

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const rail = "card"

//go:generate mockgen -destination=../../mocks/card_usecase_mock.go -package=mocks . CardUsecase

type CardUsecase interface {
	Initiate(ctx context.Context, transactionID string) (*domain.CardRequest, error)
	IngestCallback(ctx context.Context, cardRequestID string, cb domain.CardCallback) (*domain.CardRequest, error)
	PollStatus(ctx context.Context, transactionID string) (domain.TransactionStatus, error)
}

type Options struct {
	// BaseHost is the public origin the card gateway calls back.
	BaseHost string
}

func (o Options) callbackURL(cardRequestID string) string {
	return strings.TrimRight(o.BaseHost, "/") + "/api/v1/card-requests/" + cardRequestID
}

type DefaultCardUsecase struct {
	Transactions domain.TransactionRepository
	CardRequests domain.CardRequestRepository
	Catalog      domain.CatalogRepository
	Gateway      domain.CardGateway
	Tasks        domain.TaskQueue
	Options      Options
	Metrics      *metrics.FulfillmentMetrics
}

func NewDefaultCardUsecase(
	transactions domain.TransactionRepository,
	cardRequests domain.CardRequestRepository,
	catalog domain.CatalogRepository,
	gateway domain.CardGateway,
	tasks domain.TaskQueue,
	opts Options,
	m *metrics.FulfillmentMetrics,
) *DefaultCardUsecase {
	return &DefaultCardUsecase{
		Transactions: transactions,
		CardRequests: cardRequests,
		Catalog:      catalog,
		Gateway:      gateway,
		Tasks:        tasks,
		Options:      opts,
		Metrics:      m,
	}
}

// cardMethod loads the card terminal bound to the transaction.
func (uc *DefaultCardUsecase) cardMethod(ctx context.Context, tx *domain.Transaction) (*domain.PaymentMethod, error) {
	if tx.MethodID() == "" {
		return nil, domain.ErrPaymentMethodRequired
	}
	method, err := uc.Catalog.GetPaymentMethodByID(ctx, tx.MethodID())
	if err != nil {
		return nil, err
	}
	if method.BaseType != domain.BaseMethodCard {
		return nil, domain.ErrUnsupportedMethod
	}
	if method.Card.GatewayMerchantID == "" || method.Card.EncryptedSecretKey == "" {
		return nil, domain.NewError(domain.ErrValidation, "card payment method has no gateway terminal configured")
	}
	return method, nil
}

func (uc *DefaultCardUsecase) transition(ctx context.Context, tx *domain.Transaction, to domain.TransactionStatus) (bool, error) {
	applied, err := uc.Transactions.UpdateTransactionStatus(ctx, tx.ID, to)
	if err != nil {
		return false, err
	}
	if applied {
		tx.Status = to
		uc.Metrics.RecordTransition(rail, string(to))
	}
	return applied, nil
}
