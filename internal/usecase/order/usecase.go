// Package order turns a buyer's airlink purchase into a commerce order and its ledger transaction.
package order

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/idempotency"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../../mocks/order_usecase_mock.go -package=mocks . OrderUsecase

type OrderUsecase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderOutput, error)
	CreateTransaction(ctx context.Context, in TransactionInput) (*domain.Transaction, error)
}

// HoldInitializer reserves the order amount on the hold rail.
type HoldInitializer interface {
	InitializeHold(ctx context.Context, airlink *domain.Airlink, merchant *domain.Merchant, payerPhone string) (string, error)
}

type CreateOrderInput struct {
	AirlinkID       string
	PaymentMethodID string
	Buyer           domain.Buyer
}

type CreateOrderOutput struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}

type TransactionInput struct {
	ExternalOrderID string
	Amount          decimal.Decimal
	MerchantID      string
	PaymentMethodID string
	HoldReference   string
}

type Options struct {
	// ChannelID is the commerce sales channel used for airlinks that do not name their own.
	ChannelID string
}

type DefaultOrderUsecase struct {
	Catalog      domain.CatalogRepository
	Transactions domain.TransactionRepository
	Commerce     domain.CommerceGateway
	Holds        HoldInitializer
	Guard        *idempotency.Guard
	Options      Options
	Metrics      *metrics.FulfillmentMetrics
	now          func() time.Time
}

// NewDefaultOrderUsecase builds the orchestrator. A nil holds disables hold initialization.
func NewDefaultOrderUsecase(
	catalog domain.CatalogRepository,
	transactions domain.TransactionRepository,
	commerce domain.CommerceGateway,
	holds HoldInitializer,
	guard *idempotency.Guard,
	opts Options,
	m *metrics.FulfillmentMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		Catalog:      catalog,
		Transactions: transactions,
		Commerce:     commerce,
		Holds:        holds,
		Guard:        guard,
		Options:      opts,
		Metrics:      m,
		now:          time.Now,
	}
}
