package loan

import (
	"context"
	"log/slog"
	"strings"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// Webhook is the status push of the loan gateway.
type Webhook struct {
	Status string
	Offers []domain.LoanOffer
}

// HandleWebhook applies a gateway status push. It follows the same convergence as the poll path,
// so a webhook delivered twice or racing a poll ends in the same state.
func (uc *DefaultLoanUsecase) HandleWebhook(ctx context.Context, loanRequestID string, hook Webhook) (*domain.LoanRequest, error) {
	status := domain.LoanRequestStatus(strings.ToUpper(strings.TrimSpace(hook.Status)))
	if !status.WebhookAccepted() {
		uc.Metrics.RecordWebhook(rail, "invalid")
		return nil, domain.ErrInvalidHookStatus
	}
	if status == domain.LoanRequestStatusApproved && len(hook.Offers) == 0 {
		uc.Metrics.RecordWebhook(rail, "invalid")
		return nil, domain.ErrHookOffersRequired
	}
	if err := domain.ValidateOffers(hook.Offers); err != nil {
		uc.Metrics.RecordWebhook(rail, "invalid")
		return nil, err
	}

	req, err := uc.LoanRequests.GetLoanRequestByID(ctx, loanRequestID)
	if err != nil {
		uc.Metrics.RecordWebhook(rail, "unknown")
		return nil, err
	}

	if status == domain.LoanRequestStatusApproved {
		inserted, err := uc.LoanRequests.CreateOffersIfAbsent(ctx, req.ID, hook.Offers)
		if err != nil {
			return nil, err
		}
		if !inserted {
			slog.Debug("loan webhook offers already known", "loan_request_id", req.ID)
		}
	}

	if err := uc.converge(ctx, req, status, ""); err != nil {
		return nil, err
	}
	uc.Metrics.RecordWebhook(rail, string(status))
	return req, nil
}
