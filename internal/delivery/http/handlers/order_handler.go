package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LavaJover/shvark-fulfillment-service/internal/delivery/http/dto"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/confirmation"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/order"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/settlement"
)

type OrderHandler struct {
	Orders        order.OrderUsecase
	Confirmations confirmation.ConfirmationUsecase
	Settlement    settlement.SettlementUsecase
}

func NewOrderHandler(
	orders order.OrderUsecase,
	confirmations confirmation.ConfirmationUsecase,
	settlement settlement.SettlementUsecase,
) *OrderHandler {
	return &OrderHandler{Orders: orders, Confirmations: confirmations, Settlement: settlement}
}

func (h *OrderHandler) Routes(r chi.Router) {
	r.Post("/airlinks/{airlinkID}/orders", h.createOrder)
	r.Post("/orders/{orderID}/confirmation", h.requestConfirmation)
	r.Post("/orders/{orderID}/unhold", h.unhold)
}

func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.Orders.CreateOrder(r.Context(), order.CreateOrderInput{
		AirlinkID:       chi.URLParam(r, "airlinkID"),
		PaymentMethodID: req.PaymentMethodID,
		Buyer: domain.Buyer{
			CustomerID: req.Buyer.CustomerID,
			Phone:      req.Buyer.Phone,
			Email:      req.Buyer.Email,
		},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *OrderHandler) requestConfirmation(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmationRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.MerchantID == "" {
		writeError(w, r, domain.NewError(domain.ErrValidation, "merchant_id is required"))
		return
	}

	c, err := h.Confirmations.RequestConfirmation(r.Context(), chi.URLParam(r, "orderID"), req.MerchantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConfirmationResponse{OrderID: c.OrderID, Trials: c.Trials, UpdatedAt: c.UpdatedAt})
}

func (h *OrderHandler) unhold(w http.ResponseWriter, r *http.Request) {
	if err := h.Settlement.RequestUnhold(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
