package loan

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// PollOffers fetches the gateway view of an accepted application, stores first-seen offers and
// converges the loan request and its transaction onto the reported status.
func (uc *DefaultLoanUsecase) PollOffers(ctx context.Context, loanRequestID string) (*domain.LoanRequest, error) {
	req, err := uc.LoanRequests.GetLoanRequestByID(ctx, loanRequestID)
	if err != nil {
		return nil, err
	}
	if req.ReferenceID() == "" {
		return nil, domain.ErrLoanNotSubmitted
	}

	result, err := uc.Gateway.Offers(ctx, req.ReferenceID())
	if err != nil {
		return nil, err
	}

	if _, err := uc.LoanRequests.CreateOffersIfAbsent(ctx, req.ID, result.Offers); err != nil {
		return nil, err
	}
	if len(result.Raw) > 0 {
		req.RawPayload = result.Raw
	}
	if err := uc.converge(ctx, req, result.Status, result.RedirectURL); err != nil {
		return nil, err
	}
	return req, nil
}

// ListOffers returns the known offers of an order. With none known yet a poll is queued
// and an empty list returned.
func (uc *DefaultLoanUsecase) ListOffers(ctx context.Context, orderID string) ([]*domain.LoanOffer, error) {
	tx, _, err := uc.loanTransaction(ctx, orderID)
	if err != nil {
		return nil, err
	}
	req, err := uc.LoanRequests.GetLoanRequestByTransactionID(ctx, tx.ID)
	if err != nil {
		return nil, err
	}

	offers, err := uc.LoanRequests.ListOffers(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 && req.ReferenceID() != "" {
		if err := uc.queuePoll(ctx, req); err != nil {
			slog.Error("loan poll was not queued", "loan_request_id", req.ID, "error", err)
		}
	}
	if offers == nil {
		offers = []*domain.LoanOffer{}
	}
	return offers, nil
}

// SelectOffer locks the chosen offer in with the gateway and makes it the only suitable one.
// Choosing the offer that is already selected does nothing.
func (uc *DefaultLoanUsecase) SelectOffer(ctx context.Context, orderID, offerID string) (*domain.LoanOffer, error) {
	tx, _, err := uc.loanTransaction(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tx.Status.IsTerminal() {
		return nil, domain.ErrTransactionFinished
	}
	req, err := uc.LoanRequests.GetLoanRequestByTransactionID(ctx, tx.ID)
	if err != nil {
		return nil, err
	}

	offers, err := uc.LoanRequests.ListOffers(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, domain.ErrOffersNotReady
	}
	if req.ReferenceID() == "" {
		return nil, domain.ErrLoanNotSubmitted
	}

	selected, err := uc.LoanRequests.SelectOffer(ctx, req.ID, offerID, func(offer *domain.LoanOffer) error {
		return uc.Gateway.PickOffer(ctx, domain.LoanOfferPick{
			ReferenceID: req.ReferenceID(),
			Product:     offer.OuterID,
			Period:      offer.Period,
			Principal:   offer.Amount,
		})
	})
	if err != nil {
		return nil, err
	}
	slog.Info("loan offer selected", "loan_request_id", req.ID, "offer_id", selected.ID)
	return selected, nil
}

// converge applies a gateway loan status to the request and its transaction. Final statuses stick
// and an APPROVED report does not undo a selected offer.
func (uc *DefaultLoanUsecase) converge(ctx context.Context, req *domain.LoanRequest, status domain.LoanRequestStatus, redirectURL string) error {
	if advances(req.Status, status) {
		req.Status = status
	}
	if status == domain.LoanRequestStatusApproved && req.SelectedOfferID == nil && redirectURL != "" {
		req.RedirectURL = redirectURL
	}
	if err := uc.LoanRequests.UpdateLoanRequest(ctx, req); err != nil {
		return err
	}

	switch status {
	case domain.LoanRequestStatusApproved:
		if req.SelectedOfferID == nil {
			_, err := uc.transition(ctx, req.TransactionID, domain.TransactionStatusActionRequired)
			return err
		}
	case domain.LoanRequestStatusRejected:
		_, err := uc.transition(ctx, req.TransactionID, domain.TransactionStatusFailed)
		return err
	case domain.LoanRequestStatusIssued:
		applied, err := uc.transition(ctx, req.TransactionID, domain.TransactionStatusCompleted)
		if err != nil {
			return err
		}
		if applied {
			slog.Info("loan issued", "loan_request_id", req.ID, "transaction_id", req.TransactionID)
			return uc.Tasks.Submit(ctx, domain.TaskFinalizeTransaction, domain.TransactionTask{TransactionID: req.TransactionID})
		}
	}
	return nil
}

func advances(current, next domain.LoanRequestStatus) bool {
	if next == "" || current == next || current.IsFinal() {
		return false
	}
	if current == domain.LoanRequestStatusOfferSelected {
		return next.IsFinal()
	}
	return true
}
