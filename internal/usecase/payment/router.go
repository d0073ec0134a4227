// Package payment routes a transaction to its payment rail and tells the buyer what to do next.
package payment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

//go:generate mockgen -destination=../../mocks/payment_usecase_mock.go -package=mocks . PaymentUsecase

type PaymentUsecase interface {
	ProcessPayment(ctx context.Context, orderID string) (*ProcessResult, error)
	ChangePaymentMethod(ctx context.Context, orderID, methodID string) (*domain.Transaction, error)
}

type ProcessResult struct {
	Status         domain.TransactionStatus `json:"status"`
	RequiredAction domain.RequiredAction    `json:"required_action,omitempty"`
	RedirectURL    string                   `json:"redirect_url,omitempty"`
}

type DefaultPaymentUsecase struct {
	Transactions domain.TransactionRepository
	CardRequests domain.CardRequestRepository
	LoanRequests domain.LoanRequestRepository
	Catalog      domain.CatalogRepository
	Tasks        domain.TaskQueue
	Metrics      *metrics.FulfillmentMetrics
}

func NewDefaultPaymentUsecase(
	transactions domain.TransactionRepository,
	cardRequests domain.CardRequestRepository,
	loanRequests domain.LoanRequestRepository,
	catalog domain.CatalogRepository,
	tasks domain.TaskQueue,
	m *metrics.FulfillmentMetrics,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		Transactions: transactions,
		CardRequests: cardRequests,
		LoanRequests: loanRequests,
		Catalog:      catalog,
		Tasks:        tasks,
		Metrics:      m,
	}
}

// ProcessPayment advances the transaction of an order by its status and payment rail.
// Work that talks to a gateway is queued; the result names the buyer's next step.
func (uc *DefaultPaymentUsecase) ProcessPayment(ctx context.Context, orderID string) (*ProcessResult, error) {
	tx, err := uc.Transactions.GetTransactionByExternalOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch tx.Status {
	case domain.TransactionStatusCompleted:
		if !tx.Synced {
			if err := uc.submit(ctx, domain.TaskFinalizeTransaction, tx.ID); err != nil {
				return nil, err
			}
		}
		return &ProcessResult{Status: tx.Status}, nil
	case domain.TransactionStatusFailed, domain.TransactionStatusCanceled:
		return &ProcessResult{Status: tx.Status}, nil
	}

	if tx.MethodID() == "" {
		return nil, domain.ErrPaymentMethodRequired
	}
	method, err := uc.Catalog.GetPaymentMethodByID(ctx, tx.MethodID())
	if err != nil {
		return nil, err
	}

	switch method.BaseType {
	case domain.BaseMethodCard:
		return uc.processCard(ctx, tx)
	case domain.BaseMethodLoan:
		return uc.processLoan(ctx, tx)
	default:
		return nil, domain.ErrUnsupportedMethod
	}
}

func (uc *DefaultPaymentUsecase) processCard(ctx context.Context, tx *domain.Transaction) (*ProcessResult, error) {
	switch tx.Status {
	case domain.TransactionStatusNew, domain.TransactionStatusInProgress:
		if _, err := uc.transition(ctx, tx, domain.TransactionStatusInProgress, domain.BaseMethodCard); err != nil {
			return nil, err
		}
		if err := uc.submit(ctx, domain.TaskCardInitiate, tx.ID); err != nil {
			return nil, err
		}
		return &ProcessResult{Status: tx.Status}, nil

	case domain.TransactionStatusActionRequired:
		req, err := uc.CardRequests.GetCardRequestByTransactionID(ctx, tx.ID)
		if errors.Is(err, domain.ErrNotFound) {
			// switched to card after the loan rail asked for action
			if err := uc.submit(ctx, domain.TaskCardInitiate, tx.ID); err != nil {
				return nil, err
			}
			return &ProcessResult{Status: tx.Status}, nil
		}
		if err != nil {
			return nil, err
		}
		if err := uc.submit(ctx, domain.TaskCardPoll, tx.ID); err != nil {
			return nil, err
		}
		return &ProcessResult{
			Status:         tx.Status,
			RequiredAction: domain.RequiredActionFollowRedirectLink,
			RedirectURL:    req.RedirectURL,
		}, nil
	}
	return &ProcessResult{Status: tx.Status}, nil
}

func (uc *DefaultPaymentUsecase) processLoan(ctx context.Context, tx *domain.Transaction) (*ProcessResult, error) {
	switch tx.Status {
	case domain.TransactionStatusNew, domain.TransactionStatusInProgress:
		if _, err := uc.transition(ctx, tx, domain.TransactionStatusInProgress, domain.BaseMethodLoan); err != nil {
			return nil, err
		}
		if _, err := uc.transition(ctx, tx, domain.TransactionStatusActionRequired, domain.BaseMethodLoan); err != nil {
			return nil, err
		}
		return &ProcessResult{Status: tx.Status, RequiredAction: domain.RequiredActionFillIIN}, nil

	case domain.TransactionStatusActionRequired:
		req, err := uc.LoanRequests.GetLoanRequestByTransactionID(ctx, tx.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return &ProcessResult{Status: tx.Status, RequiredAction: domain.RequiredActionFillIIN}, nil
			}
			return nil, err
		}
		if req.IIN == "" {
			return &ProcessResult{Status: tx.Status, RequiredAction: domain.RequiredActionFillIIN}, nil
		}
		if req.SelectedOfferID == nil {
			return &ProcessResult{Status: tx.Status, RequiredAction: domain.RequiredActionChooseOffer}, nil
		}
		if err := uc.Tasks.Submit(ctx, domain.TaskLoanPoll, domain.LoanRequestTask{LoanRequestID: req.ID}); err != nil {
			return nil, err
		}
		return &ProcessResult{
			Status:         tx.Status,
			RequiredAction: domain.RequiredActionFollowRedirectLink,
			RedirectURL:    req.RedirectURL,
		}, nil
	}
	return &ProcessResult{Status: tx.Status}, nil
}

func (uc *DefaultPaymentUsecase) transition(ctx context.Context, tx *domain.Transaction, to domain.TransactionStatus, rail domain.BaseMethodType) (bool, error) {
	if tx.Status == to {
		return false, nil
	}
	applied, err := uc.Transactions.UpdateTransactionStatus(ctx, tx.ID, to)
	if err != nil {
		return false, err
	}
	if applied {
		tx.Status = to
		uc.Metrics.RecordTransition(string(rail), string(to))
		slog.Debug("transaction moved", "transaction_id", tx.ID, "status", to)
	}
	return applied, nil
}

func (uc *DefaultPaymentUsecase) submit(ctx context.Context, task, transactionID string) error {
	return uc.Tasks.Submit(ctx, task, domain.TransactionTask{TransactionID: transactionID})
}
