// Package confirmation issues delivery confirmation codes for fulfilled commerce orders.
package confirmation

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

const (
	DefaultMaxRequests = 3
	notifyPurpose      = "order_confirmation"
)

//go:generate mockgen -destination=../../mocks/confirmation_usecase_mock.go -package=mocks . ConfirmationUsecase

type ConfirmationUsecase interface {
	RequestConfirmation(ctx context.Context, orderID, merchantID string) (*domain.OrderConfirmation, error)
}

type DefaultConfirmationUsecase struct {
	Commerce      domain.CommerceGateway
	Confirmations domain.ConfirmationRepository
	Notifier      domain.Notifier
	MaxRequests   int
	code          func() (string, error)
}

func NewDefaultConfirmationUsecase(
	commerce domain.CommerceGateway,
	confirmations domain.ConfirmationRepository,
	notifier domain.Notifier,
	maxRequests int,
) *DefaultConfirmationUsecase {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	return &DefaultConfirmationUsecase{
		Commerce:      commerce,
		Confirmations: confirmations,
		Notifier:      notifier,
		MaxRequests:   maxRequests,
		code:          GenerateCode,
	}
}

// RequestConfirmation issues a fresh code for a fulfilled order of merchantID and sends it to the customer.
// Delivery is best-effort; the stored code is returned even when sending failed.
func (uc *DefaultConfirmationUsecase) RequestConfirmation(ctx context.Context, orderID, merchantID string) (*domain.OrderConfirmation, error) {
	order, err := uc.Commerce.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.CommerceOrderStatusFulfilled {
		return nil, domain.ErrOrderNotFulfilled
	}

	orderMerchant := metadataValue(order.Metadata, "merchant_id", "merchantId")
	customer := metadataValue(order.Metadata, "customer_id", "customerId")
	if orderMerchant == "" || customer == "" {
		return nil, domain.ErrOrderMetadata
	}
	if orderMerchant != merchantID {
		return nil, domain.ErrMerchantMismatch
	}

	code, err := uc.code()
	if err != nil {
		return nil, fmt.Errorf("generate confirmation code: %w", err)
	}

	issued, err := uc.Confirmations.IssueConfirmation(ctx, &domain.OrderConfirmation{
		OrderID:    orderID,
		MerchantID: orderMerchant,
		CustomerID: customer,
		Code:       code,
	}, uc.MaxRequests)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, issued)
	return issued, nil
}

func (uc *DefaultConfirmationUsecase) notify(ctx context.Context, c *domain.OrderConfirmation) {
	if uc.Notifier == nil {
		return
	}
	ok, info, err := uc.Notifier.Send(ctx, notifyPurpose, c.CustomerID, map[string]string{
		"order_id": c.OrderID,
		"code":     c.Code,
	})
	switch {
	case err != nil:
		slog.Warn("confirmation code was not delivered", "order_id", c.OrderID, "error", err)
	case !ok:
		slog.Warn("notifier refused confirmation code", "order_id", c.OrderID, "provider_info", info)
	default:
		slog.Info("confirmation code sent", "order_id", c.OrderID, "trials", c.Trials)
	}
}

func metadataValue(md map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := md[k]; v != "" {
			return v
		}
	}
	return ""
}

// GenerateCode returns a random six digit code without a leading zero.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
