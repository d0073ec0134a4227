// Package loan drives the micro-loan rail: borrower identity, OTP, application, offers and gateway webhooks.
package loan

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const rail = "loan"

//go:generate mockgen -destination=../../mocks/loan_usecase_mock.go -package=mocks . LoanUsecase

type LoanUsecase interface {
	SubmitIdentity(ctx context.Context, orderID, iin, phone string) (*IdentityResult, error)
	SendOTP(ctx context.Context, orderID, iin, phone string) error
	VerifyOTP(ctx context.Context, orderID, iin, code string) error
	Apply(ctx context.Context, loanRequestID string) (*domain.LoanRequest, error)
	PollOffers(ctx context.Context, loanRequestID string) (*domain.LoanRequest, error)
	ListOffers(ctx context.Context, orderID string) ([]*domain.LoanOffer, error)
	SelectOffer(ctx context.Context, orderID, offerID string) (*domain.LoanOffer, error)
	HandleWebhook(ctx context.Context, loanRequestID string, hook Webhook) (*domain.LoanRequest, error)
}

type Options struct {
	// BaseHost is the public origin used for the hook and status page links.
	BaseHost string
}

func (o Options) link(path string) string {
	return strings.TrimRight(o.BaseHost, "/") + path
}

type DefaultLoanUsecase struct {
	Transactions domain.TransactionRepository
	LoanRequests domain.LoanRequestRepository
	Catalog      domain.CatalogRepository
	Gateway      domain.LoanGateway
	Tasks        domain.TaskQueue
	Options      Options
	Metrics      *metrics.FulfillmentMetrics
}

func NewDefaultLoanUsecase(
	transactions domain.TransactionRepository,
	loanRequests domain.LoanRequestRepository,
	catalog domain.CatalogRepository,
	gateway domain.LoanGateway,
	tasks domain.TaskQueue,
	opts Options,
	m *metrics.FulfillmentMetrics,
) *DefaultLoanUsecase {
	return &DefaultLoanUsecase{
		Transactions: transactions,
		LoanRequests: loanRequests,
		Catalog:      catalog,
		Gateway:      gateway,
		Tasks:        tasks,
		Options:      opts,
		Metrics:      m,
	}
}

// loanTransaction resolves an external order to its transaction and checks that it pays on the loan rail.
func (uc *DefaultLoanUsecase) loanTransaction(ctx context.Context, orderID string) (*domain.Transaction, *domain.PaymentMethod, error) {
	tx, err := uc.Transactions.GetTransactionByExternalOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	method, err := uc.loanMethod(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	return tx, method, nil
}

func (uc *DefaultLoanUsecase) loanMethod(ctx context.Context, tx *domain.Transaction) (*domain.PaymentMethod, error) {
	if tx.MethodID() == "" {
		return nil, domain.ErrPaymentMethodRequired
	}
	method, err := uc.Catalog.GetPaymentMethodByID(ctx, tx.MethodID())
	if err != nil {
		return nil, err
	}
	if method.BaseType != domain.BaseMethodLoan {
		return nil, domain.ErrUnsupportedMethod
	}
	return method, nil
}

func (uc *DefaultLoanUsecase) transition(ctx context.Context, transactionID string, to domain.TransactionStatus) (bool, error) {
	applied, err := uc.Transactions.UpdateTransactionStatus(ctx, transactionID, to)
	if err != nil {
		return false, err
	}
	if applied {
		uc.Metrics.RecordTransition(rail, string(to))
	}
	return applied, nil
}

func validIIN(iin string) bool {
	if len(iin) != 12 {
		return false
	}
	for _, r := range iin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateIdentity(iin, phone string) error {
	if !validIIN(iin) {
		return domain.ErrInvalidIIN
	}
	if strings.TrimSpace(phone) == "" {
		return domain.ErrInvalidPhone
	}
	return nil
}
