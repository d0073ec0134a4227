package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusNew            TransactionStatus = "NEW"
	TransactionStatusInProgress     TransactionStatus = "IN_PROGRESS"
	TransactionStatusActionRequired TransactionStatus = "ACTION_REQUIRED"
	TransactionStatusCompleted      TransactionStatus = "COMPLETED"
	TransactionStatusFailed         TransactionStatus = "FAILED"
	TransactionStatusCanceled       TransactionStatus = "CANCELED"
)

const DefaultCurrency = "KZT"

var transactionStatuses = []TransactionStatus{
	TransactionStatusNew,
	TransactionStatusInProgress,
	TransactionStatusActionRequired,
	TransactionStatusCompleted,
	TransactionStatusFailed,
	TransactionStatusCanceled,
}

type Transaction struct {
	ID                string
	Status            TransactionStatus
	ExternalOrderID   string
	MerchantID        string
	Amount            decimal.Decimal
	Currency          string
	PaymentMethodID   *string
	HoldReference     *string
	HoldReceiptNumber *string
	Synced            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusNew, TransactionStatusInProgress, TransactionStatusActionRequired,
		TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCanceled:
		return true
	}
	return false
}

func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCanceled:
		return true
	}
	return false
}

// CanTransition reports whether a transaction may move from one status to another.
// Terminal statuses are final and a status never moves back to NEW.
func CanTransition(from, to TransactionStatus) bool {
	if from == to || !from.Valid() || from.IsTerminal() {
		return false
	}
	switch to {
	case TransactionStatusFailed, TransactionStatusCanceled, TransactionStatusCompleted:
		return true
	case TransactionStatusInProgress:
		return from == TransactionStatusNew || from == TransactionStatusActionRequired
	case TransactionStatusActionRequired:
		return from == TransactionStatusNew || from == TransactionStatusInProgress
	case TransactionStatusNew:
		return false
	}
	return false
}

// SourceStatuses lists the statuses a transaction may be in to move to target.
// Repositories use it as the WHERE clause of conditional status updates.
func SourceStatuses(target TransactionStatus) []TransactionStatus {
	var out []TransactionStatus
	for _, s := range transactionStatuses {
		if CanTransition(s, target) {
			out = append(out, s)
		}
	}
	return out
}

func (t *Transaction) HasHold() bool {
	return t.HoldReference != nil && *t.HoldReference != ""
}

func (t *Transaction) MethodID() string {
	if t.PaymentMethodID == nil {
		return ""
	}
	return *t.PaymentMethodID
}
