package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LavaJover/shvark-fulfillment-service/internal/delivery/http/dto"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/loan"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/payment"
)

// PaymentHandler serves the buyer side of the payment page.
type PaymentHandler struct {
	Payments payment.PaymentUsecase
	Loans    loan.LoanUsecase
}

func NewPaymentHandler(payments payment.PaymentUsecase, loans loan.LoanUsecase) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Loans: loans}
}

func (h *PaymentHandler) Routes(r chi.Router) {
	r.Route("/orders/{orderID}/process-payment", func(r chi.Router) {
		r.Post("/", h.process)
		r.Patch("/", h.changeMethod)
		r.Post("/identity", h.submitIdentity)
		r.Post("/send-otp", h.sendOTP)
		r.Post("/validate-otp", h.validateOTP)
		r.Get("/offers", h.listOffers)
		r.Post("/offer", h.selectOffer)
		r.Patch("/offer", h.selectOffer)
	})
}

func (h *PaymentHandler) process(w http.ResponseWriter, r *http.Request) {
	res, err := h.Payments.ProcessPayment(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *PaymentHandler) changeMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangeMethodRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.PaymentMethodID == "" {
		writeError(w, r, domain.ErrPaymentMethodRequired)
		return
	}

	tx, err := h.Payments.ChangePaymentMethod(r.Context(), chi.URLParam(r, "orderID"), req.PaymentMethodID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTransactionResponse(tx))
}

func (h *PaymentHandler) submitIdentity(w http.ResponseWriter, r *http.Request) {
	var req dto.IdentityRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.Loans.SubmitIdentity(r.Context(), chi.URLParam(r, "orderID"), req.IIN, req.MobilePhone)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.IdentityResponse{
		LoanRequestID:  res.LoanRequest.ID,
		Status:         res.Status,
		RequiredAction: res.RequiredAction,
	})
}

func (h *PaymentHandler) sendOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.IdentityRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Loans.SendOTP(r.Context(), chi.URLParam(r, "orderID"), req.IIN, req.MobilePhone); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PaymentHandler) validateOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateOTPRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Loans.VerifyOTP(r.Context(), chi.URLParam(r, "orderID"), req.IIN, req.Code); err != nil {
		writeError(w, r, err)
		return
	}
	// the application itself runs in the worker
	w.WriteHeader(http.StatusAccepted)
}

func (h *PaymentHandler) listOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Loans.ListOffers(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToOfferList(offers))
}

func (h *PaymentHandler) selectOffer(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectOfferRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.OfferID == "" {
		writeError(w, r, domain.NewError(domain.ErrValidation, "offer_id is required"))
		return
	}

	offer, err := h.Loans.SelectOffer(r.Context(), chi.URLParam(r, "orderID"), req.OfferID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToOfferResponse(offer))
}
