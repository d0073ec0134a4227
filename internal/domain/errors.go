package domain

import "errors"

// Error categories. Every error returned by a use case wraps exactly one of them.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrForbidden      = errors.New("forbidden")
	ErrGateway        = errors.New("gateway failure")
	ErrRateLimited    = errors.New("rate limited")
	ErrBusy           = errors.New("busy, try again")
	ErrNotImplemented = errors.New("not implemented")
)

type reasonError struct {
	kind error
	msg  string
}

func (e *reasonError) Error() string { return e.msg }

func (e *reasonError) Unwrap() error { return e.kind }

// NewError returns an error with its own message that still matches kind under errors.Is.
func NewError(kind error, msg string) error {
	return &reasonError{kind: kind, msg: msg}
}

var (
	ErrAirlinkNotFound         = NewError(ErrNotFound, "airlink not found")
	ErrAirlinkNotPublished     = NewError(ErrValidation, "airlink is not published")
	ErrAirlinkNotStarted       = NewError(ErrValidation, "airlink is not active yet")
	ErrAirlinkExpired          = NewError(ErrValidation, "airlink has expired")
	ErrAirlinkEmpty            = NewError(ErrValidation, "airlink has no items")
	ErrAirlinkMultiItem        = NewError(ErrNotImplemented, "airlinks with more than one item are not supported")
	ErrMerchantNotFound        = NewError(ErrNotFound, "merchant not found")
	ErrPaymentMethodNotAllowed = NewError(ErrValidation, "payment method is not available for this merchant")
	ErrInvalidBuyer            = NewError(ErrValidation, "buyer phone and customer id are required")

	ErrTransactionNotFound   = NewError(ErrNotFound, "transaction not found")
	ErrTransactionFinished   = NewError(ErrConflict, "transaction is already finished")
	ErrPaymentMethodNotFound = NewError(ErrNotFound, "payment method not found")
	ErrPaymentMethodRequired = NewError(ErrValidation, "payment method is not selected")
	ErrUnsupportedMethod     = NewError(ErrNotImplemented, "unsupported payment method type")

	ErrCardRequestNotFound = NewError(ErrNotFound, "card request not found")
	ErrInvalidCallback     = NewError(ErrValidation, "malformed card gateway callback")

	ErrLoanRequestNotFound = NewError(ErrNotFound, "loan request not found")
	ErrLoanOfferNotFound   = NewError(ErrNotFound, "loan offer not found")
	ErrOffersNotReady      = NewError(ErrNotFound, "loan offers are not available yet")
	ErrInvalidIIN          = NewError(ErrValidation, "iin must contain 12 digits")
	ErrInvalidPhone        = NewError(ErrValidation, "mobile phone is required")
	ErrInvalidOTP          = NewError(ErrValidation, "otp code is required")
	ErrOTPRejected         = NewError(ErrValidation, "otp code was rejected")
	ErrIINMismatch         = NewError(ErrValidation, "iin does not match the loan request")
	ErrIdentityLocked      = NewError(ErrConflict, "loan request identity can no longer be changed")
	ErrLoanDecided         = NewError(ErrConflict, "loan request is already decided")
	ErrLoanNotSubmitted    = NewError(ErrConflict, "loan application has not been accepted by the gateway")
	ErrInvalidHookStatus   = NewError(ErrValidation, "unsupported loan webhook status")
	ErrHookOffersRequired  = NewError(ErrValidation, "approved loan webhook must carry offers")
	ErrInvalidOffer        = NewError(ErrValidation, "loan offer needs a positive period and amount")

	ErrNoHold         = NewError(ErrConflict, "transaction has no hold reference")
	ErrUnholdRejected = NewError(ErrGateway, "hold gateway rejected the release")

	ErrOrderNotFound        = NewError(ErrNotFound, "order not found")
	ErrOrderNotFulfilled    = NewError(ErrConflict, "order is not fulfilled")
	ErrOrderMetadata        = NewError(ErrValidation, "order metadata lacks merchant or customer")
	ErrMerchantMismatch     = NewError(ErrForbidden, "order belongs to another merchant")
	ErrConfirmationExceeded = NewError(ErrConflict, "confirmation request limit exceeded")
)
