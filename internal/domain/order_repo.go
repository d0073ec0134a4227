package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=order_repo.go -destination=../mocks/repository_mock.go -package=mocks

type TransactionRepository interface {
	// CreateTransaction inserts tx unless a transaction for the same external order exists,
	// in which case the stored one is returned with created=false.
	CreateTransaction(ctx context.Context, tx *Transaction) (stored *Transaction, created bool, err error)
	GetTransactionByID(ctx context.Context, id string) (*Transaction, error)
	GetTransactionByExternalOrderID(ctx context.Context, orderID string) (*Transaction, error)
	GetTransactionByHoldReference(ctx context.Context, reference string) (*Transaction, error)
	// UpdateTransactionStatus moves the transaction to status only if the current status allows it.
	UpdateTransactionStatus(ctx context.Context, id string, status TransactionStatus) (bool, error)
	// ApplyHoldStatus is UpdateTransactionStatus addressed by hold reference, also storing the receipt.
	ApplyHoldStatus(ctx context.Context, reference string, status TransactionStatus, receipt string) (bool, error)
	// SwitchPaymentMethod binds methodID; when purge is set the sub-requests of that rail are deleted
	// in the same database transaction.
	SwitchPaymentMethod(ctx context.Context, id, methodID string, purge *BaseMethodType) error
	// SyncCompleted locks the row, runs push when the transaction is COMPLETED and not synced,
	// and marks it synced. pushed is false when nothing had to be done.
	SyncCompleted(ctx context.Context, id string, push func(tx *Transaction) error) (pushed bool, err error)
	FindExpiredHolds(ctx context.Context, createdBefore time.Time) ([]*Transaction, error)
}

type CardRequestRepository interface {
	GetOrCreateCardRequest(ctx context.Context, transactionID string) (*CardRequest, bool, error)
	GetCardRequestByID(ctx context.Context, id string) (*CardRequest, error)
	GetCardRequestByTransactionID(ctx context.Context, transactionID string) (*CardRequest, error)
	UpdateCardRequest(ctx context.Context, req *CardRequest) error
}

type LoanRequestRepository interface {
	GetLoanRequestByID(ctx context.Context, id string) (*LoanRequest, error)
	GetLoanRequestByTransactionID(ctx context.Context, transactionID string) (*LoanRequest, error)
	// SaveIdentity creates the loan request of a transaction or rewrites iin and phone on it.
	SaveIdentity(ctx context.Context, transactionID, iin, phone string) (req *LoanRequest, created bool, err error)
	UpdateLoanRequest(ctx context.Context, req *LoanRequest) error
	ListOffers(ctx context.Context, loanRequestID string) ([]*LoanOffer, error)
	// CreateOffersIfAbsent inserts offers only when the loan request has none yet.
	CreateOffersIfAbsent(ctx context.Context, loanRequestID string, offers []LoanOffer) (bool, error)
	// SelectOffer marks offerID as the only suitable offer. confirm runs inside the database
	// transaction and its error rolls the selection back.
	SelectOffer(ctx context.Context, loanRequestID, offerID string, confirm func(offer *LoanOffer) error) (*LoanOffer, error)
}

type CatalogRepository interface {
	GetAirlinkByID(ctx context.Context, id string) (*Airlink, error)
	GetMerchantByID(ctx context.Context, id string) (*Merchant, error)
	GetPaymentMethodByID(ctx context.Context, id string) (*PaymentMethod, error)
}

type ConfirmationRepository interface {
	// IssueConfirmation stores code for the order under a row lock and increments the trial counter.
	// It fails with ErrConfirmationExceeded once maxTrials codes were issued.
	IssueConfirmation(ctx context.Context, c *OrderConfirmation, maxTrials int) (*OrderConfirmation, error)
}
