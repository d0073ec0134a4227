// Package p2p is the client of the secondary hold rail: it opens a hold for an order and later releases it.
package p2p

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/config"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/gateway"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const (
	gatewayName = "hold_gateway"
	deviceType  = "MOBILE"
	holdMCC     = 2999
)

type Client struct {
	initURL      string
	confirmURL   string
	initToken    string
	confirmToken string
	httpClient   *http.Client
	metrics      *metrics.FulfillmentMetrics
}

func NewClient(cfg config.HoldGateway, m *metrics.FulfillmentMetrics) *Client {
	return &Client{
		initURL:      join(cfg.BaseURL, cfg.InitPath),
		confirmURL:   join(cfg.BaseURL, cfg.ConfirmPath),
		initToken:    cfg.InitToken,
		confirmToken: cfg.ConfirmToken,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		metrics:      m,
	}
}

type payer struct {
	PhoneAcr string `json:"phoneAcr"`
}

type beneficiary struct {
	IINBin  string `json:"iinBinBcr"`
	Name    string `json:"nameBcr"`
	IBAN    string `json:"ibanBcr"`
	Address string `json:"addressBcr"`
	Phone   string `json:"phoneBcr"`
}

type payment struct {
	Sdok        string      `json:"sdok"`
	Dscr        string      `json:"dscr"`
	DeviceType  string      `json:"deviceType"`
	MCC         int         `json:"mcc"`
	Payer       payer       `json:"payer"`
	Beneficiary beneficiary `json:"beneficiary"`
}

type link struct {
	ImageURL  string `json:"imageUrl"`
	OrderURL  string `json:"orderUrl"`
	OrderName string `json:"orderName"`
	Price     string `json:"price"`
}

type initRequest struct {
	Payment  payment `json:"payment"`
	Airlinks struct {
		Links []link `json:"links"`
	} `json:"airlinks"`
}

type initResponse struct {
	Reference string `json:"reference"`
}

type unholdResponse struct {
	Status string `json:"status"`
	ErrMsg string `json:"errMsg"`
}

func (c *Client) InitHold(ctx context.Context, in domain.HoldInit) (ref string, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "init", started, err) }()

	req := initRequest{
		Payment: payment{
			Sdok:       in.Amount.String(),
			Dscr:       "Оплата за " + in.Description,
			DeviceType: deviceType,
			MCC:        holdMCC,
			Payer:      payer{PhoneAcr: in.PayerPhone},
			Beneficiary: beneficiary{
				IINBin:  in.Merchant.BIN,
				Name:    in.Merchant.LegalName,
				IBAN:    in.Merchant.IBAN,
				Address: in.Merchant.Address,
				Phone:   in.Merchant.Phone,
			},
		},
	}
	req.Airlinks.Links = make([]link, 0, len(in.Links))
	for _, l := range in.Links {
		req.Airlinks.Links = append(req.Airlinks.Links, link{
			ImageURL:  l.ImageURL,
			OrderURL:  l.OrderURL,
			OrderName: l.OrderName,
			Price:     l.Price.String(),
		})
	}

	var out initResponse
	if err := c.post(ctx, c.initURL, c.initToken, req, &out); err != nil {
		return "", err
	}
	if out.Reference == "" {
		return "", gateway.Malformed(gatewayName, "init: reference missing")
	}
	return out.Reference, nil
}

func (c *Client) Unhold(ctx context.Context, reference string) (res *domain.UnholdResult, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "unhold", started, err) }()

	var out unholdResponse
	url := strings.TrimRight(c.confirmURL, "/") + "/" + reference
	if err := c.post(ctx, url, c.confirmToken, map[string]string{"reference": reference}, &out); err != nil {
		return nil, err
	}
	return &domain.UnholdResult{Status: out.Status, ErrMsg: out.ErrMsg}, nil
}

func (c *Client) post(ctx context.Context, url, token string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", gatewayName, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", gatewayName, err)
	}
	req.Header.Set("Authorization", "Basic "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gateway.Transport(gatewayName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gateway.Transport(gatewayName, err)
	}
	if !gateway.IsSuccess(resp.StatusCode) {
		return gateway.Status(gatewayName, resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return gateway.Malformed(gatewayName, "%v", err)
	}
	return nil
}

func join(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
