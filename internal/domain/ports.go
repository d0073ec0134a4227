package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=../mocks/ports_mock.go -package=mocks

type CheckoutInput struct {
	VariantID   string
	Price       decimal.Decimal
	Quantity    int
	CustomerID  string
	AirlinkID   string
	ChannelSlug string
	Email       string
}

type CompletionInput struct {
	OrderID  string
	Amount   decimal.Decimal
	Currency string
	Note     string
}

// CommerceGateway is the narrow view of the external commerce system.
type CommerceGateway interface {
	ResolveChannel(ctx context.Context, channelID string) (string, error)
	CreateCheckout(ctx context.Context, in CheckoutInput) (string, error)
	CreateOrder(ctx context.Context, checkoutID, merchantID string) (string, error)
	PushCompletion(ctx context.Context, in CompletionInput) error
	GetOrder(ctx context.Context, orderID string) (*CommerceOrder, error)
}

type CardInitRequest struct {
	OrderID         string
	MerchantID      string
	EncryptedSecret string
	Amount          decimal.Decimal
	Description     string
	ResultURL       string
	SuccessURL      string
	FailureURL      string
}

type CardInitResult struct {
	RedirectURL string
	PaymentID   string
}

type CardStatusRequest struct {
	OrderID         string
	MerchantID      string
	PaymentID       string
	EncryptedSecret string
}

type CardStatusResult struct {
	PaymentStatus string
}

type CardGateway interface {
	InitPayment(ctx context.Context, req CardInitRequest) (*CardInitResult, error)
	PaymentStatus(ctx context.Context, req CardStatusRequest) (*CardStatusResult, error)
}

type LoanApplication struct {
	IIN           string
	Phone         string
	Product       string
	Partner       string
	Principal     decimal.Decimal
	Period        int
	ReferenceID   string
	SuccessURL    string
	FailureURL    string
	HookURL       string
	MerchantBIN   string
	MerchantName  string
	GoodsCategory string
}

type LoanApplicationResult struct {
	ReferenceID string
	Raw         []byte
}

type LoanOffersResult struct {
	Status      LoanRequestStatus
	Offers      []LoanOffer
	RedirectURL string
	Raw         []byte
}

type LoanOfferPick struct {
	ReferenceID string
	Product     string
	Period      int
	Principal   decimal.Decimal
}

type LoanGateway interface {
	SendOTP(ctx context.Context, iin, phone string) error
	ValidateOTP(ctx context.Context, iin, phone, code string) error
	Apply(ctx context.Context, app LoanApplication) (*LoanApplicationResult, error)
	Offers(ctx context.Context, referenceID string) (*LoanOffersResult, error)
	PickOffer(ctx context.Context, pick LoanOfferPick) error
}

type HoldLink struct {
	ImageURL  string
	OrderURL  string
	OrderName string
	Price     decimal.Decimal
}

type HoldInit struct {
	Amount      decimal.Decimal
	Description string
	PayerPhone  string
	Merchant    Merchant
	Links       []HoldLink
}

type UnholdResult struct {
	Status string
	ErrMsg string
}

const (
	unholdStatusSuccess   = "SUCCESS"
	unholdStatusError     = "ERROR"
	unholdAlreadyReleased = "Платеж с референсом обработан"
)

// Released reports whether the hold gateway released the funds. An ERROR answer saying the
// reference was already processed counts as released.
func (r *UnholdResult) Released() (bool, error) {
	if r.Status == "" && r.ErrMsg == "" {
		return false, fmt.Errorf("%w: unhold response carries neither status nor errMsg", ErrGateway)
	}
	if r.Status == unholdStatusSuccess {
		return true, nil
	}
	return r.Status == unholdStatusError && strings.Contains(r.ErrMsg, unholdAlreadyReleased), nil
}

type HoldGateway interface {
	InitHold(ctx context.Context, in HoldInit) (string, error)
	Unhold(ctx context.Context, reference string) (*UnholdResult, error)
}

// Notifier delivers a message for purpose to target. providerInfo is whatever the provider returned.
type Notifier interface {
	Send(ctx context.Context, purpose, target string, params map[string]string) (ok bool, providerInfo string, err error)
}
