package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/LavaJover/shvark-fulfillment-service/internal/delivery/http/dto"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/card"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/loan"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/settlement"
)

// WebhookHandler receives gateway notifications. Bodies are acknowledged only after they are stored.
type WebhookHandler struct {
	Cards      card.CardUsecase
	Loans      loan.LoanUsecase
	Settlement settlement.SettlementUsecase
}

func NewWebhookHandler(cards card.CardUsecase, loans loan.LoanUsecase, settlement settlement.SettlementUsecase) *WebhookHandler {
	return &WebhookHandler{Cards: cards, Loans: loans, Settlement: settlement}
}

func (h *WebhookHandler) Routes(r chi.Router) {
	r.Post("/card-requests/{id}", h.cardCallback)
	r.Patch("/card-requests/{id}", h.cardCallback)
	r.Post("/loan-requests/{id}", h.loanHook)
	r.Post("/holds/{reference}", h.holdHook)
}

func (h *WebhookHandler) cardCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, domain.ErrInvalidCallback)
		return
	}
	cb, err := cardCallbackFromForm(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.Cards.IngestCallback(r.Context(), chi.URLParam(r, "id"), cb); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func cardCallbackFromForm(r *http.Request) (domain.CardCallback, error) {
	result, err := strconv.Atoi(r.PostFormValue("pg_result"))
	if err != nil {
		return domain.CardCallback{}, domain.ErrInvalidCallback
	}
	cb := domain.CardCallback{
		OrderID:     r.PostFormValue("pg_order_id"),
		Reference:   r.PostFormValue("pg_reference"),
		CardPan:     r.PostFormValue("pg_card_pan"),
		PaymentDate: r.PostFormValue("pg_payment_date"),
		Result:      result,
	}
	if v := r.PostFormValue("pg_can_reject"); v != "" {
		canReject, err := strconv.Atoi(v)
		if err != nil {
			return domain.CardCallback{}, domain.ErrInvalidCallback
		}
		cb.CanReject = &canReject
	}
	if cb.FullAmount, err = optionalDecimal(r.PostFormValue("pg_ps_full_amount")); err != nil {
		return domain.CardCallback{}, domain.ErrInvalidCallback
	}
	if cb.NetAmount, err = optionalDecimal(r.PostFormValue("pg_net_amount")); err != nil {
		return domain.CardCallback{}, domain.ErrInvalidCallback
	}
	return cb, nil
}

func optionalDecimal(v string) (*decimal.Decimal, error) {
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (h *WebhookHandler) loanHook(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanHookRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	hook := loan.Webhook{Status: req.Status}
	for _, o := range req.Offers {
		offer := domain.LoanOffer{
			LoanType: o.LoanType,
			Period:   o.Period,
			Amount:   decimal.NewFromFloat(o.Principal),
			OuterID:  o.OuterID,
		}
		if o.MonthlyPayment != nil {
			monthly := decimal.NewFromFloat(*o.MonthlyPayment)
			offer.MonthlyPayment = &monthly
		}
		hook.Offers = append(hook.Offers, offer)
	}

	lr, err := h.Loans.HandleWebhook(r.Context(), chi.URLParam(r, "id"), hook)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoanHookResponse{ReferenceID: lr.ID, Status: lr.Status})
}

func (h *WebhookHandler) holdHook(w http.ResponseWriter, r *http.Request) {
	var req dto.HoldHookRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.Settlement.ConfirmHold(r.Context(), chi.URLParam(r, "reference"), settlement.Webhook{
		Code:          req.Status,
		ReceiptNumber: req.ReceiptNumber,
	}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
