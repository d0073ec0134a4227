package loan

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

type IdentityResult struct {
	LoanRequest    *domain.LoanRequest
	Status         domain.TransactionStatus
	RequiredAction domain.RequiredAction
}

// SubmitIdentity stores the borrower iin and phone on the transaction's loan request.
// The first submission moves the transaction to ACTION_REQUIRED.
func (uc *DefaultLoanUsecase) SubmitIdentity(ctx context.Context, orderID, iin, phone string) (*IdentityResult, error) {
	if err := validateIdentity(iin, phone); err != nil {
		return nil, err
	}
	tx, _, err := uc.loanTransaction(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tx.Status.IsTerminal() {
		return nil, domain.ErrTransactionFinished
	}

	req, created, err := uc.saveIdentity(ctx, tx, iin, phone)
	if err != nil {
		return nil, err
	}

	out := &IdentityResult{LoanRequest: req, Status: tx.Status}
	if created {
		out.Status = domain.TransactionStatusActionRequired
		out.RequiredAction = domain.RequiredActionFillIIN
	}
	return out, nil
}

// SendOTP asks the loan gateway to text a code to the borrower, creating the loan request when missing.
func (uc *DefaultLoanUsecase) SendOTP(ctx context.Context, orderID, iin, phone string) error {
	if err := validateIdentity(iin, phone); err != nil {
		return err
	}
	tx, _, err := uc.loanTransaction(ctx, orderID)
	if err != nil {
		return err
	}
	if tx.Status.IsTerminal() {
		return domain.ErrTransactionFinished
	}

	req, _, err := uc.saveIdentity(ctx, tx, iin, phone)
	if err != nil {
		return err
	}

	if err := uc.Gateway.SendOTP(ctx, req.IIN, req.MobilePhone); err != nil {
		slog.Warn("loan otp send failed", "loan_request_id", req.ID, "error", err)
		return err
	}
	return nil
}

// VerifyOTP checks the code with the loan gateway and queues the loan application on success.
// An iin other than the stored one is rejected before the gateway is contacted.
func (uc *DefaultLoanUsecase) VerifyOTP(ctx context.Context, orderID, iin, code string) error {
	if code == "" {
		return domain.ErrInvalidOTP
	}
	tx, _, err := uc.loanTransaction(ctx, orderID)
	if err != nil {
		return err
	}
	if tx.Status.IsTerminal() {
		return domain.ErrTransactionFinished
	}

	req, err := uc.LoanRequests.GetLoanRequestByTransactionID(ctx, tx.ID)
	if err != nil {
		return err
	}
	if req.IIN != iin {
		return domain.ErrIINMismatch
	}

	if err := uc.Gateway.ValidateOTP(ctx, req.IIN, req.MobilePhone, code); err != nil {
		slog.Warn("loan otp validation failed", "loan_request_id", req.ID, "error", err)
		return err
	}

	return uc.Tasks.Submit(ctx, domain.TaskLoanApply, domain.LoanRequestTask{LoanRequestID: req.ID})
}

func (uc *DefaultLoanUsecase) saveIdentity(ctx context.Context, tx *domain.Transaction, iin, phone string) (*domain.LoanRequest, bool, error) {
	req, created, err := uc.LoanRequests.SaveIdentity(ctx, tx.ID, iin, phone)
	if err != nil {
		return nil, false, err
	}
	if created {
		if _, err := uc.transition(ctx, tx.ID, domain.TransactionStatusActionRequired); err != nil {
			return nil, false, err
		}
		slog.Info("loan request created", "transaction_id", tx.ID, "loan_request_id", req.ID)
	}
	return req, created, nil
}
