package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/idempotency"
	"github.com/google/uuid"
)

// CreateOrder places the commerce order of an airlink purchase at most once per buyer phone and airlink
// within the idempotency window. Concurrent and retried calls get the first call's result.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderOutput, error) {
	if strings.TrimSpace(in.Buyer.Phone) == "" || strings.TrimSpace(in.Buyer.CustomerID) == "" {
		return nil, domain.ErrInvalidBuyer
	}
	key := idempotency.OrderKey{Phone: in.Buyer.Phone, AirlinkID: in.AirlinkID}
	out, err := idempotency.Execute(ctx, uc.Guard, key, func(ctx context.Context) (*CreateOrderOutput, error) {
		return uc.createOrder(ctx, in)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *DefaultOrderUsecase) createOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderOutput, error) {
	airlink, merchant, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	item := airlink.Items[0]

	channelID := airlink.ChannelID
	if channelID == "" {
		channelID = uc.Options.ChannelID
	}
	slug, err := uc.Commerce.ResolveChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	checkoutID, err := uc.Commerce.CreateCheckout(ctx, domain.CheckoutInput{
		VariantID:   item.VariantID,
		Price:       item.Price,
		Quantity:    item.Quantity,
		CustomerID:  in.Buyer.CustomerID,
		AirlinkID:   airlink.ID,
		ChannelSlug: slug,
		Email:       in.Buyer.Email,
	})
	if err != nil {
		slog.Error("commerce checkout failed", "airlink_id", airlink.ID, "error", err)
		return nil, err
	}

	orderID, err := uc.Commerce.CreateOrder(ctx, checkoutID, merchant.ID)
	if err != nil {
		slog.Error("commerce order failed", "airlink_id", airlink.ID, "checkout_id", checkoutID, "error", err)
		return nil, err
	}

	var holdReference string
	if uc.Holds != nil {
		holdReference, err = uc.Holds.InitializeHold(ctx, airlink, merchant, in.Buyer.Phone)
		if err != nil {
			slog.Warn("hold initialization failed, order continues without hold", "order_id", orderID, "error", err)
			holdReference = ""
		}
	}

	tx, err := uc.CreateTransaction(ctx, TransactionInput{
		ExternalOrderID: orderID,
		Amount:          airlink.TotalPrice(),
		MerchantID:      merchant.ID,
		PaymentMethodID: in.PaymentMethodID,
		HoldReference:   holdReference,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order created", "order_id", orderID, "transaction_id", tx.ID, "airlink_id", airlink.ID)
	return &CreateOrderOutput{OrderID: orderID, TransactionID: tx.ID}, nil
}

// validate checks the airlink can be sold right now, rejecting in a fixed order before any external call.
func (uc *DefaultOrderUsecase) validate(ctx context.Context, in CreateOrderInput) (*domain.Airlink, *domain.Merchant, error) {
	airlink, err := uc.Catalog.GetAirlinkByID(ctx, in.AirlinkID)
	if err != nil {
		return nil, nil, err
	}
	if !airlink.IsPublished {
		return nil, nil, domain.ErrAirlinkNotPublished
	}

	now := uc.now()
	if airlink.DateStart != nil && now.Before(*airlink.DateStart) {
		return nil, nil, domain.ErrAirlinkNotStarted
	}
	if airlink.DateEnd != nil && now.After(*airlink.DateEnd) {
		return nil, nil, domain.ErrAirlinkExpired
	}

	switch len(airlink.Items) {
	case 0:
		return nil, nil, domain.ErrAirlinkEmpty
	case 1:
	default:
		return nil, nil, domain.ErrAirlinkMultiItem
	}

	merchant, err := uc.Catalog.GetMerchantByID(ctx, airlink.MerchantID)
	if err != nil {
		return nil, nil, err
	}
	if in.PaymentMethodID != "" && !merchant.AcceptsMethod(in.PaymentMethodID) {
		return nil, nil, domain.ErrPaymentMethodNotAllowed
	}
	return airlink, merchant, nil
}

// CreateTransaction writes the NEW transaction of an external order. Repeating it for the same order
// returns the stored transaction.
func (uc *DefaultOrderUsecase) CreateTransaction(ctx context.Context, in TransactionInput) (*domain.Transaction, error) {
	if in.ExternalOrderID == "" {
		return nil, domain.NewError(domain.ErrValidation, "external order id is required")
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewError(domain.ErrValidation, "transaction amount must not be negative")
	}

	tx := &domain.Transaction{
		ID:              uuid.NewString(),
		Status:          domain.TransactionStatusNew,
		ExternalOrderID: in.ExternalOrderID,
		MerchantID:      in.MerchantID,
		Amount:          in.Amount,
		Currency:        domain.DefaultCurrency,
	}
	if in.PaymentMethodID != "" {
		methodID := in.PaymentMethodID
		tx.PaymentMethodID = &methodID
	}
	if in.HoldReference != "" {
		reference := in.HoldReference
		tx.HoldReference = &reference
	}

	stored, created, err := uc.Transactions.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("store transaction for order %s: %w", in.ExternalOrderID, err)
	}
	if created {
		uc.Metrics.RecordTransactionCreated(stored.MerchantID, stored.Currency, stored.Amount.InexactFloat64())
	} else {
		slog.Info("transaction already exists for order", "order_id", in.ExternalOrderID, "transaction_id", stored.ID)
	}
	return stored, nil
}
