package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type TransactionResponse struct {
	ID              string                   `json:"id"`
	OrderID         string                   `json:"order_id"`
	Status          domain.TransactionStatus `json:"status"`
	Amount          decimal.Decimal          `json:"amount"`
	Currency        string                   `json:"currency"`
	PaymentMethodID string                   `json:"payment_method_id,omitempty"`
}

func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		OrderID:         tx.ExternalOrderID,
		Status:          tx.Status,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		PaymentMethodID: tx.MethodID(),
	}
}

type IdentityResponse struct {
	LoanRequestID  string                   `json:"loan_request_id"`
	Status         domain.TransactionStatus `json:"status"`
	RequiredAction domain.RequiredAction    `json:"required_action,omitempty"`
}

type OfferResponse struct {
	ID             string           `json:"id"`
	LoanType       string           `json:"loan_type"`
	Period         int              `json:"period"`
	Amount         decimal.Decimal  `json:"amount"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	Suitable       bool             `json:"suitable"`
}

func ToOfferResponse(o *domain.LoanOffer) OfferResponse {
	return OfferResponse{
		ID:             o.ID,
		LoanType:       o.LoanType,
		Period:         o.Period,
		Amount:         o.Amount,
		MonthlyPayment: o.MonthlyPayment,
		Suitable:       o.Suitable,
	}
}

func ToOfferList(offers []*domain.LoanOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, ToOfferResponse(o))
	}
	return out
}

type ConfirmationResponse struct {
	OrderID   string    `json:"order_id"`
	Trials    int       `json:"trials"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoanHookResponse struct {
	ReferenceID string                   `json:"reference_id"`
	Status      domain.LoanRequestStatus `json:"status"`
}
