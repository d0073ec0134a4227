package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apihttp "github.com/LavaJover/shvark-fulfillment-service/internal/delivery/http"
	"github.com/LavaJover/shvark-fulfillment-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/mocks"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/loan"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/order"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/payment"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/settlement"
)

type fixture struct {
	orders        *mocks.MockOrderUsecase
	payments      *mocks.MockPaymentUsecase
	loans         *mocks.MockLoanUsecase
	cards         *mocks.MockCardUsecase
	confirmations *mocks.MockConfirmationUsecase
	settlement    *mocks.MockSettlementUsecase
	router        http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		orders:        mocks.NewMockOrderUsecase(ctrl),
		payments:      mocks.NewMockPaymentUsecase(ctrl),
		loans:         mocks.NewMockLoanUsecase(ctrl),
		cards:         mocks.NewMockCardUsecase(ctrl),
		confirmations: mocks.NewMockConfirmationUsecase(ctrl),
		settlement:    mocks.NewMockSettlementUsecase(ctrl),
	}
	f.router = apihttp.New(
		handlers.NewOrderHandler(f.orders, f.confirmations, f.settlement),
		handlers.NewPaymentHandler(f.payments, f.loans),
		handlers.NewWebhookHandler(f.cards, f.loans, f.settlement),
		prometheus.NewRegistry(),
		nil,
	)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidIIN, http.StatusBadRequest},
		{domain.ErrMerchantMismatch, http.StatusForbidden},
		{domain.ErrAirlinkNotFound, http.StatusNotFound},
		{domain.ErrTransactionFinished, http.StatusConflict},
		{domain.ErrConfirmationExceeded, http.StatusConflict},
		{domain.NewError(domain.ErrRateLimited, "otp throttled"), http.StatusTooManyRequests},
		{domain.ErrUnsupportedMethod, http.StatusNotImplemented},
		{domain.NewError(domain.ErrGateway, "timeout"), http.StatusBadGateway},
		{domain.NewError(domain.ErrBusy, "locked"), http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handlers.StatusFor(tt.err), tt.err.Error())
	}
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().CreateOrder(gomock.Any(), order.CreateOrderInput{
		AirlinkID:       "air-1",
		PaymentMethodID: "pm-1",
		Buyer:           domain.Buyer{CustomerID: "c-1", Phone: "+77010000000"},
	}).Return(&order.CreateOrderOutput{OrderID: "o-1", TransactionID: "tx-1"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/airlinks/air-1/orders",
		`{"payment_method_id":"pm-1","buyer":{"customer_id":"c-1","phone":"+77010000000"}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out order.CreateOrderOutput
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "o-1", out.OrderID)
	assert.Equal(t, "tx-1", out.TransactionID)
}

func TestCreateOrder_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/airlinks/air-1/orders", `{"buyer":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("busy key", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, domain.NewError(domain.ErrBusy, "in flight"))

		rec := f.do(http.MethodPost, "/api/v1/airlinks/air-1/orders", `{"payment_method_id":"pm-1"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		rec := f.do(http.MethodPost, "/api/v1/airlinks/air-1/orders", `{"payment_method_id":"pm-1"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestProcessPayment(t *testing.T) {
	f := newFixture(t)
	f.payments.EXPECT().ProcessPayment(gomock.Any(), "o-1").Return(&payment.ProcessResult{
		Status:      domain.TransactionStatusInProgress,
		RedirectURL: "https://pay.test/redirect",
	}, nil)

	rec := f.do(http.MethodPost, "/api/v1/orders/o-1/process-payment", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"IN_PROGRESS","redirect_url":"https://pay.test/redirect"}`, rec.Body.String())
}

func TestChangePaymentMethod(t *testing.T) {
	f := newFixture(t)
	methodID := "pm-2"
	f.payments.EXPECT().ChangePaymentMethod(gomock.Any(), "o-1", "pm-2").Return(&domain.Transaction{
		ID:              "tx-1",
		ExternalOrderID: "o-1",
		Status:          domain.TransactionStatusNew,
		Amount:          decimal.NewFromInt(100),
		Currency:        domain.DefaultCurrency,
		PaymentMethodID: &methodID,
	}, nil)

	rec := f.do(http.MethodPatch, "/api/v1/orders/o-1/process-payment", `{"payment_method_id":"pm-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payment_method_id":"pm-2"`)

	rec = f.do(http.MethodPatch, "/api/v1/orders/o-1/process-payment", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoanIdentityFlow(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.loans.EXPECT().SendOTP(gomock.Any(), "o-1", "900101300123", "+77010000000").Return(nil),
		f.loans.EXPECT().VerifyOTP(gomock.Any(), "o-1", "900101300123", "1234").Return(nil),
	)

	rec := f.do(http.MethodPost, "/api/v1/orders/o-1/process-payment/send-otp",
		`{"iin":"900101300123","mobile_phone":"+77010000000"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/orders/o-1/process-payment/validate-otp", `{"iin":"900101300123","code":"1234"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestValidateOTP_Rejected(t *testing.T) {
	f := newFixture(t)
	f.loans.EXPECT().VerifyOTP(gomock.Any(), "o-1", "900101300123", "0000").Return(domain.ErrOTPRejected)

	rec := f.do(http.MethodPost, "/api/v1/orders/o-1/process-payment/validate-otp", `{"iin":"900101300123","code":"0000"}`)
	assert.Equal(t, handlers.StatusFor(domain.ErrOTPRejected), rec.Code)
}

func TestOffers(t *testing.T) {
	f := newFixture(t)
	monthly := decimal.NewFromInt(9000)
	offer := &domain.LoanOffer{ID: "off-1", LoanType: "installment", Period: 12, Amount: decimal.NewFromInt(100000), MonthlyPayment: &monthly}
	f.loans.EXPECT().ListOffers(gomock.Any(), "o-1").Return([]*domain.LoanOffer{offer}, nil)
	f.loans.EXPECT().SelectOffer(gomock.Any(), "o-1", "off-1").Return(offer, nil)

	rec := f.do(http.MethodGet, "/api/v1/orders/o-1/process-payment/offers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "off-1", list[0]["id"])

	rec = f.do(http.MethodPost, "/api/v1/orders/o-1/process-payment/offer", `{"offer_id":"off-1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/orders/o-1/process-payment/offer", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestConfirmation(t *testing.T) {
	f := newFixture(t)
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.confirmations.EXPECT().RequestConfirmation(gomock.Any(), "o-1", "m-1").
		Return(&domain.OrderConfirmation{OrderID: "o-1", Trials: 1, UpdatedAt: updated}, nil)

	rec := f.do(http.MethodPost, "/api/v1/orders/o-1/confirmation", `{"merchant_id":"m-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"order_id":"o-1","trials":1,"updated_at":"2026-01-02T03:04:05Z"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/v1/orders/o-1/confirmation", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnhold(t *testing.T) {
	f := newFixture(t)
	f.settlement.EXPECT().RequestUnhold(gomock.Any(), "o-1").Return(nil)
	f.settlement.EXPECT().RequestUnhold(gomock.Any(), "o-2").Return(domain.ErrNoHold)

	assert.Equal(t, http.StatusAccepted, f.do(http.MethodPost, "/api/v1/orders/o-1/unhold", "").Code)
	assert.Equal(t, handlers.StatusFor(domain.ErrNoHold), f.do(http.MethodPost, "/api/v1/orders/o-2/unhold", "").Code)
}

func TestCardCallback(t *testing.T) {
	f := newFixture(t)
	canReject := 1
	full := decimal.RequireFromString("1000.00")
	f.cards.EXPECT().IngestCallback(gomock.Any(), "cr-1", domain.CardCallback{
		OrderID:    "tx-1",
		Reference:  "ref-1",
		CardPan:    "4405-63XX-XXXX-1234",
		Result:     1,
		CanReject:  &canReject,
		FullAmount: &full,
	}).Return(&domain.CardRequest{ID: "cr-1"}, nil)

	form := url.Values{
		"pg_order_id":       {"tx-1"},
		"pg_reference":      {"ref-1"},
		"pg_card_pan":       {"4405-63XX-XXXX-1234"},
		"pg_result":         {"1"},
		"pg_can_reject":     {"1"},
		"pg_ps_full_amount": {"1000.00"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/card-requests/cr-1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCardCallback_MalformedResult(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/card-requests/cr-1", strings.NewReader("pg_result=yes"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoanHook(t *testing.T) {
	f := newFixture(t)
	f.loans.EXPECT().HandleWebhook(gomock.Any(), "lr-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hook loan.Webhook) (*domain.LoanRequest, error) {
			assert.Equal(t, "APPROVED", hook.Status)
			require.Len(t, hook.Offers, 1)
			assert.True(t, hook.Offers[0].Amount.Equal(decimal.NewFromInt(150000)))
			require.NotNil(t, hook.Offers[0].MonthlyPayment)
			assert.True(t, hook.Offers[0].MonthlyPayment.Equal(decimal.RequireFromString("13500.5")))
			return &domain.LoanRequest{ID: "lr-1", Status: domain.LoanRequestStatusApproved}, nil
		})

	rec := f.do(http.MethodPost, "/api/v1/loan-requests/lr-1",
		`{"status":"APPROVED","offers":[{"principal":150000,"period":12,"loan_type":"installment","monthly_payment":13500.5}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reference_id":"lr-1","status":"APPROVED"}`, rec.Body.String())
}

func TestHoldHook(t *testing.T) {
	f := newFixture(t)
	f.settlement.EXPECT().ConfirmHold(gomock.Any(), "hold-1", settlement.Webhook{Code: "HOLD", ReceiptNumber: "R-1"}).Return(true, nil)

	rec := f.do(http.MethodPost, "/api/v1/holds/hold-1", `{"status":"HOLD","receipt_number":"R-1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/metrics", "").Code)
}
