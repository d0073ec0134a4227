// Package mfo talks to the microfinance loan gateway: OTP checks, loan applications, offer polling and offer locking.
package mfo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LavaJover/shvark-fulfillment-service/internal/config"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/gateway"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const gatewayName = "loan_gateway"

type Client struct {
	cfg        config.LoanGateway
	host       string
	httpClient *http.Client
	tokens     *TokenSource
	metrics    *metrics.FulfillmentMetrics
}

func NewClient(cfg config.LoanGateway, m *metrics.FulfillmentMetrics) *Client {
	host := strings.TrimRight(cfg.Host, "/")
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Client{
		cfg:        cfg,
		host:       host,
		httpClient: httpClient,
		tokens:     NewTokenSource(host+cfg.AuthPath, cfg.Username, cfg.Password, httpClient),
		metrics:    m,
	}
}

type otpRequest struct {
	MobilePhone string `json:"mobile_phone"`
	IIN         string `json:"iin"`
	Code        string `json:"code,omitempty"`
}

type creditParams struct {
	Principal float64 `json:"principal"`
	Period    int     `json:"period"`
}

type additionalInformation struct {
	ReferenceID string `json:"reference_id"`
	SuccessURL  string `json:"success_url,omitempty"`
	FailureURL  string `json:"failure_url,omitempty"`
	HookURL     string `json:"hook_url"`
}

type merchantInfo struct {
	BIN  string `json:"bin"`
	Name string `json:"name"`
}

type creditGood struct {
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}

type applyRequest struct {
	IIN                   string                `json:"iin"`
	MobilePhone           string                `json:"mobile_phone"`
	Product               string                `json:"product"`
	Partner               string                `json:"partner"`
	Channel               string                `json:"channel"`
	CreditParams          creditParams          `json:"credit_params"`
	AdditionalInformation additionalInformation `json:"additional_information"`
	Merchant              merchantInfo          `json:"merchant"`
	CreditGoods           []creditGood          `json:"credit_goods"`
}

type applyResponse struct {
	UUID string `json:"uuid"`
}

type approvedParam struct {
	Principal      decimal.Decimal  `json:"principal"`
	Period         int              `json:"period"`
	ProductType    string           `json:"product_type"`
	Product        string           `json:"product"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment"`
}

type statusResponse struct {
	Result                   string          `json:"result"`
	RedirectURL              string          `json:"redirect_url"`
	AdditionalApprovedParams []approvedParam `json:"additional_approved_params"`
}

type setOfferRequest struct {
	CreditParams creditParams `json:"credit_params"`
	Product      string       `json:"product"`
	ReferenceID  string       `json:"reference_id"`
}

func (c *Client) SendOTP(ctx context.Context, iin, phone string) (err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "send_otp", started, err) }()

	_, _, err = c.do(ctx, http.MethodPost, c.cfg.SendOTPPath, otpRequest{MobilePhone: phone, IIN: iin})
	return err
}

func (c *Client) ValidateOTP(ctx context.Context, iin, phone, code string) (err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "validate_otp", started, err) }()

	status, _, err := c.do(ctx, http.MethodPost, c.cfg.VerifyPath, otpRequest{MobilePhone: phone, IIN: iin, Code: code})
	if status == http.StatusBadRequest {
		return fmt.Errorf("%s: %w", gatewayName, domain.ErrOTPRejected)
	}
	return err
}

func (c *Client) Apply(ctx context.Context, app domain.LoanApplication) (res *domain.LoanApplicationResult, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "apply", started, err) }()

	period := app.Period
	if period == 0 {
		period = c.cfg.Period
	}
	payload := applyRequest{
		IIN:          app.IIN,
		MobilePhone:  app.Phone,
		Product:      app.Product,
		Partner:      app.Partner,
		Channel:      c.cfg.Channel,
		CreditParams: creditParams{Principal: app.Principal.InexactFloat64(), Period: period},
		AdditionalInformation: additionalInformation{
			ReferenceID: app.ReferenceID,
			SuccessURL:  app.SuccessURL,
			FailureURL:  app.FailureURL,
			HookURL:     app.HookURL,
		},
		Merchant:    merchantInfo{BIN: app.MerchantBIN, Name: app.MerchantName},
		CreditGoods: []creditGood{{Cost: app.Principal.InexactFloat64(), Quantity: 1, Category: app.GoodsCategory}},
	}

	status, raw, err := c.do(ctx, http.MethodPost, c.cfg.ApplyPath, payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusAccepted {
		return nil, gateway.Status(gatewayName, status, raw)
	}
	var out applyResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, gateway.Malformed(gatewayName, "apply: %v", err)
	}
	if out.UUID == "" {
		return nil, gateway.Malformed(gatewayName, "apply: uuid missing")
	}
	return &domain.LoanApplicationResult{ReferenceID: out.UUID, Raw: raw}, nil
}

func (c *Client) Offers(ctx context.Context, referenceID string) (res *domain.LoanOffersResult, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "status", started, err) }()

	_, raw, err := c.do(ctx, http.MethodGet, c.cfg.StatusPath+referenceID, nil)
	if err != nil {
		return nil, err
	}
	var out statusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, gateway.Malformed(gatewayName, "status: %v", err)
	}

	status := domain.LoanRequestStatus(strings.ToUpper(out.Result))
	if status == "" {
		status = domain.LoanRequestStatusPending
	}
	offers := make([]domain.LoanOffer, 0, len(out.AdditionalApprovedParams))
	for i, p := range out.AdditionalApprovedParams {
		offer := domain.LoanOffer{
			LoanType:       p.ProductType,
			Period:         p.Period,
			Amount:         p.Principal,
			MonthlyPayment: p.MonthlyPayment,
			OuterID:        p.Product,
		}
		if err := offer.Validate(); err != nil {
			return nil, gateway.Malformed(gatewayName, "status: offer %d: period %d principal %s", i, p.Period, p.Principal)
		}
		offers = append(offers, offer)
	}
	return &domain.LoanOffersResult{
		Status:      status,
		Offers:      offers,
		RedirectURL: out.RedirectURL,
		Raw:         raw,
	}, nil
}

func (c *Client) PickOffer(ctx context.Context, pick domain.LoanOfferPick) (err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "set_offer", started, err) }()

	payload := setOfferRequest{
		CreditParams: creditParams{Principal: pick.Principal.InexactFloat64(), Period: pick.Period},
		Product:      pick.Product,
		ReferenceID:  pick.ReferenceID,
	}
	status, raw, err := c.do(ctx, http.MethodPut, c.cfg.SetOfferPath+pick.ReferenceID, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return gateway.Status(gatewayName, status, raw)
	}
	return nil
}

// do sends an authorized JSON request. Any non-2xx is returned as an error; 2xx codes are handed back for callers
// that need an exact one. A 401 drops the cached token and retries once.
func (c *Client) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return 0, nil, fmt.Errorf("%s: encode request: %w", gatewayName, err)
		}
	}

	for attempt := 0; ; attempt++ {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return 0, nil, err
		}

		req, err := http.NewRequestWithContext(ctx, method, c.host+path, bytes.NewReader(body))
		if err != nil {
			return 0, nil, fmt.Errorf("%s: build request: %w", gatewayName, err)
		}
		req.Header.Set("Authorization", "JWT "+token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return 0, nil, gateway.Transport(gatewayName, err)
		}
		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return 0, nil, gateway.Transport(gatewayName, err)
		}

		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			c.tokens.Invalidate()
			continue
		}
		if !gateway.IsSuccess(resp.StatusCode) {
			return resp.StatusCode, raw, gateway.Status(gatewayName, resp.StatusCode, raw)
		}
		return resp.StatusCode, raw, nil
	}
}
