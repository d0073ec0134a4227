// Package freedompay is the card acquiring gateway client: signed form posts answered with XML.
package freedompay

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/LavaJover/shvark-fulfillment-service/internal/config"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/gateway"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const (
	gatewayName  = "card_gateway"
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	saltLength   = 8
)

type Decrypter interface {
	Decrypt(encrypted string) (string, error)
}

type Client struct {
	host                string
	initPath            string
	statusPath          string
	statusSignaturePath string
	testMode            bool
	httpClient          *http.Client
	secrets             Decrypter
	salt                func() string
	metrics             *metrics.FulfillmentMetrics
}

func NewClient(cfg config.CardGateway, secrets Decrypter, m *metrics.FulfillmentMetrics) (*Client, error) {
	salt, err := nanoid.CustomASCII(saltAlphabet, saltLength)
	if err != nil {
		return nil, fmt.Errorf("salt generator: %w", err)
	}
	return &Client{
		host:                strings.TrimRight(cfg.Host, "/"),
		initPath:            cfg.InitPaymentPath,
		statusPath:          cfg.StatusPath,
		statusSignaturePath: cfg.StatusSignaturePath,
		testMode:            cfg.TestMode,
		httpClient:          &http.Client{Timeout: cfg.Timeout},
		secrets:             secrets,
		salt:                salt,
		metrics:             m,
	}, nil
}

type initResponse struct {
	XMLName          xml.Name `xml:"response"`
	Status           string   `xml:"pg_status"`
	PaymentID        string   `xml:"pg_payment_id"`
	RedirectURL      string   `xml:"pg_redirect_url"`
	ErrorCode        string   `xml:"pg_error_code"`
	ErrorDescription string   `xml:"pg_error_description"`
}

type statusResponse struct {
	XMLName          xml.Name `xml:"response"`
	Status           string   `xml:"pg_status"`
	PaymentID        string   `xml:"pg_payment_id"`
	PaymentStatus    string   `xml:"pg_payment_status"`
	ErrorDescription string   `xml:"pg_error_description"`
}

func (c *Client) InitPayment(ctx context.Context, req domain.CardInitRequest) (res *domain.CardInitResult, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "init_payment", started, err) }()

	params := Params{
		{Key: "pg_order_id", Value: req.OrderID},
		{Key: "pg_merchant_id", Value: req.MerchantID},
		{Key: "pg_amount", Value: req.Amount.String()},
		{Key: "pg_description", Value: req.Description},
		{Key: "pg_salt", Value: c.salt()},
		{Key: "pg_result_url", Value: req.ResultURL},
		{Key: "pg_success_url", Value: req.SuccessURL},
		{Key: "pg_failure_url", Value: req.FailureURL},
	}

	var out initResponse
	if err := c.post(ctx, c.initPath, c.initPath, params, req.EncryptedSecret, &out); err != nil {
		return nil, err
	}
	if out.RedirectURL == "" {
		if out.ErrorDescription != "" {
			return nil, fmt.Errorf("%s: %w: %s", gatewayName, domain.ErrGateway, out.ErrorDescription)
		}
		return nil, gateway.Malformed(gatewayName, "pg_redirect_url missing")
	}
	return &domain.CardInitResult{RedirectURL: out.RedirectURL, PaymentID: out.PaymentID}, nil
}

func (c *Client) PaymentStatus(ctx context.Context, req domain.CardStatusRequest) (res *domain.CardStatusResult, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "payment_status", started, err) }()

	params := Params{
		{Key: "pg_order_id", Value: req.OrderID},
		{Key: "pg_merchant_id", Value: req.MerchantID},
		{Key: "pg_salt", Value: c.salt()},
		{Key: "pg_payment_id", Value: req.PaymentID},
	}

	var out statusResponse
	if err := c.post(ctx, c.statusPath, strings.TrimLeft(c.statusSignaturePath, "/"), params, req.EncryptedSecret, &out); err != nil {
		return nil, err
	}
	if out.PaymentStatus == "" {
		if out.ErrorDescription != "" {
			return nil, fmt.Errorf("%s: %w: %s", gatewayName, domain.ErrGateway, out.ErrorDescription)
		}
		return nil, gateway.Malformed(gatewayName, "pg_payment_status missing")
	}
	return &domain.CardStatusResult{PaymentStatus: out.PaymentStatus}, nil
}

// post signs params with the decrypted terminal secret, sends them as a form and decodes the XML answer.
func (c *Client) post(ctx context.Context, path, scriptName string, params Params, encryptedSecret string, out any) error {
	secret, err := c.secrets.Decrypt(encryptedSecret)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", gatewayName, domain.ErrGateway, err)
	}

	params = params.Set("pg_testing_mode", c.testModeFlag())
	params = params.Set("pg_sig", Sign(scriptName, params, secret))

	form := url.Values{}
	for _, p := range params {
		form.Set(p.Key, fmt.Sprint(p.Value))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/"+strings.TrimLeft(path, "/"), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", gatewayName, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return gateway.Transport(gatewayName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gateway.Transport(gatewayName, err)
	}
	if !gateway.IsSuccess(resp.StatusCode) {
		return gateway.Status(gatewayName, resp.StatusCode, body)
	}
	if err := xml.Unmarshal(body, out); err != nil {
		return gateway.Malformed(gatewayName, "%v", err)
	}
	return nil
}

func (c *Client) testModeFlag() int {
	if c.testMode {
		return 1
	}
	return 0
}
