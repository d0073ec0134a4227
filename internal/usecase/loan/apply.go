package loan

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// Apply submits the loan application of a verified borrower. Once the gateway accepted it the request
// carries the gateway uuid and a status poll is queued. Re-running it on an accepted request only re-queues the poll.
func (uc *DefaultLoanUsecase) Apply(ctx context.Context, loanRequestID string) (*domain.LoanRequest, error) {
	req, err := uc.LoanRequests.GetLoanRequestByID(ctx, loanRequestID)
	if err != nil {
		return nil, err
	}
	if req.ReferenceID() != "" {
		return req, uc.queuePoll(ctx, req)
	}
	if !req.HasIdentity() {
		return nil, domain.NewError(domain.ErrValidation, "loan request has no borrower identity")
	}

	tx, err := uc.Transactions.GetTransactionByID(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if tx.Status.IsTerminal() {
		slog.Info("loan apply skipped, transaction is finished", "transaction_id", tx.ID, "status", tx.Status)
		return req, nil
	}

	method, err := uc.loanMethod(ctx, tx)
	if err != nil {
		return nil, err
	}
	merchant, err := uc.Catalog.GetMerchantByID(ctx, method.MerchantID)
	if err != nil {
		return nil, err
	}

	statusPage := uc.Options.link("/status-page")
	result, err := uc.Gateway.Apply(ctx, domain.LoanApplication{
		IIN:           req.IIN,
		Phone:         req.MobilePhone,
		Product:       method.Loan.Product,
		Partner:       method.Loan.Partner,
		Principal:     tx.Amount,
		Period:        method.Loan.Period,
		ReferenceID:   tx.ID,
		SuccessURL:    statusPage,
		FailureURL:    statusPage,
		HookURL:       uc.Options.link("/api/v1/loan-requests/" + req.ID),
		MerchantBIN:   merchant.BIN,
		MerchantName:  merchant.LegalName,
		GoodsCategory: method.Loan.GoodsCategory,
	})
	if err != nil {
		slog.Error("loan application failed", "loan_request_id", req.ID, "error", err)
		return nil, err
	}

	reference := result.ReferenceID
	req.ExternalReferenceID = &reference
	req.Status = domain.LoanRequestStatusPending
	req.RawPayload = result.Raw
	if err := uc.LoanRequests.UpdateLoanRequest(ctx, req); err != nil {
		return nil, err
	}
	slog.Info("loan application accepted", "loan_request_id", req.ID, "reference_id", reference)

	return req, uc.queuePoll(ctx, req)
}

func (uc *DefaultLoanUsecase) queuePoll(ctx context.Context, req *domain.LoanRequest) error {
	return uc.Tasks.Submit(ctx, domain.TaskLoanPoll, domain.LoanRequestTask{LoanRequestID: req.ID})
}
