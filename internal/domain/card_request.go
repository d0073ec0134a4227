package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CardRequestStatus string

const (
	CardRequestStatusPending     CardRequestStatus = "PENDING"
	CardRequestStatusSuccess     CardRequestStatus = "SUCCESS"
	CardRequestStatusFailed      CardRequestStatus = "FAILED"
	CardRequestStatusInterrupted CardRequestStatus = "INTERRUPTED"
)

type CardRequest struct {
	ID               string
	TransactionID    string
	Status           CardRequestStatus
	RedirectURL      string
	GatewayOrderID   string
	GatewayPaymentID string
	GatewayReference string
	CardPan          string
	PaymentDate      string
	ResultCode       *int
	CanReject        *int
	FullAmount       *decimal.Decimal
	NetAmount        *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CardCallback is the result notification posted by the card gateway.
type CardCallback struct {
	OrderID     string
	Reference   string
	CardPan     string
	PaymentDate string
	Result      int
	CanReject   *int
	FullAmount  *decimal.Decimal
	NetAmount   *decimal.Decimal
}

func CardStatusFromResultCode(code int) CardRequestStatus {
	switch code {
	case 0:
		return CardRequestStatusFailed
	case 1:
		return CardRequestStatusSuccess
	default:
		return CardRequestStatusInterrupted
	}
}

// CardPaymentOutcome maps a provider payment status to the transaction status it settles on.
// The second value is false while the provider is still processing.
func CardPaymentOutcome(providerStatus string) (TransactionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "success":
		return TransactionStatusCompleted, true
	case "error", "failed", "revoked", "refunded":
		return TransactionStatusFailed, true
	}
	return "", false
}
