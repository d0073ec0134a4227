package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanRequestStatus string

const (
	LoanRequestStatusPending       LoanRequestStatus = "PENDING"
	LoanRequestStatusApproved      LoanRequestStatus = "APPROVED"
	LoanRequestStatusRejected      LoanRequestStatus = "REJECTED"
	LoanRequestStatusIssued        LoanRequestStatus = "ISSUED"
	LoanRequestStatusOfferSelected LoanRequestStatus = "OFFER_SELECTED"
)

const DefaultLoanPeriod = 24

func (s LoanRequestStatus) IsFinal() bool {
	return s == LoanRequestStatusRejected || s == LoanRequestStatusIssued
}

// WebhookAccepted reports whether the loan gateway may push this status through its webhook.
func (s LoanRequestStatus) WebhookAccepted() bool {
	switch s {
	case LoanRequestStatusApproved, LoanRequestStatusRejected, LoanRequestStatusIssued:
		return true
	}
	return false
}

type LoanRequest struct {
	ID                  string
	TransactionID       string
	Status              LoanRequestStatus
	IIN                 string
	MobilePhone         string
	ExternalReferenceID *string
	SelectedOfferID     *string
	RedirectURL         string
	RawPayload          []byte
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IdentityEditable reports whether iin and phone may still be rewritten.
func (r *LoanRequest) IdentityEditable() bool {
	return r.Status == LoanRequestStatusPending && r.SelectedOfferID == nil
}

func (r *LoanRequest) HasIdentity() bool {
	return r.IIN != "" && r.MobilePhone != ""
}

func (r *LoanRequest) ReferenceID() string {
	if r.ExternalReferenceID == nil {
		return ""
	}
	return *r.ExternalReferenceID
}

type LoanOffer struct {
	ID             string
	LoanRequestID  string
	LoanType       string
	Period         int
	Amount         decimal.Decimal
	MonthlyPayment *decimal.Decimal
	Suitable       bool
	OuterID        string
	CreatedAt      time.Time
}

// Validate checks that the offer describes a real credit: a positive period and amount.
func (o LoanOffer) Validate() error {
	if o.Period <= 0 || !o.Amount.IsPositive() {
		return ErrInvalidOffer
	}
	return nil
}

// ValidateOffers fails on the first offer that does not pass Validate.
func ValidateOffers(offers []LoanOffer) error {
	for i := range offers {
		if err := offers[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RequiredAction tells the buyer what to do next on the payment page.
type RequiredAction string

const (
	RequiredActionNone               RequiredAction = ""
	RequiredActionFillIIN            RequiredAction = "FILL_IIN"
	RequiredActionChooseOffer        RequiredAction = "CHOOSE_OFFER"
	RequiredActionFollowRedirectLink RequiredAction = "FOLLOW_REDIRECT_LINK"
)
