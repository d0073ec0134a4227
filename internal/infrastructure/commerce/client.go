// Package commerce is the GraphQL client of the external commerce system that owns checkouts and orders.
package commerce

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
	gatewayName     = "commerce"
	transactionName = "Fastback transaction"
)

type Client struct {
	url        string
	token      string
	httpClient *http.Client
	metrics    *metrics.FulfillmentMetrics
}

func NewClient(cfg config.Commerce, m *metrics.FulfillmentMetrics) *Client {
	return &Client{
		url:        cfg.URL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
	}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// mutationError is the in-band error shape every mutation payload carries.
type mutationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type metadataItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type node struct {
	ID string `json:"id"`
}

func (c *Client) ResolveChannel(ctx context.Context, channelID string) (slug string, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "channel", started, err) }()

	var out struct {
		Channel *struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"channel"`
	}
	if err := c.do(ctx, channelQuery, map[string]any{"id": channelID}, &out); err != nil {
		return "", err
	}
	if out.Channel == nil || out.Channel.Slug == "" {
		return "", gateway.Malformed(gatewayName, "channel %s has no slug", channelID)
	}
	return out.Channel.Slug, nil
}

func (c *Client) CreateCheckout(ctx context.Context, in domain.CheckoutInput) (id string, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "checkout_create", started, err) }()

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	input := map[string]any{
		"channel": in.ChannelSlug,
		"email":   in.Email,
		"lines": []map[string]any{{
			"variantId": in.VariantID,
			"quantity":  quantity,
			"price":     in.Price.InexactFloat64(),
		}},
		"metadata": []metadataItem{
			{Key: "customer_id", Value: in.CustomerID},
			{Key: "airlink_id", Value: in.AirlinkID},
		},
	}

	var out struct {
		CheckoutCreate struct {
			Checkout *node           `json:"checkout"`
			Errors   []mutationError `json:"errors"`
		} `json:"checkoutCreate"`
	}
	if err := c.do(ctx, checkoutCreateMutation, map[string]any{"input": input}, &out); err != nil {
		return "", err
	}
	if err := inBand("checkoutCreate", out.CheckoutCreate.Errors); err != nil {
		return "", err
	}
	if out.CheckoutCreate.Checkout == nil || out.CheckoutCreate.Checkout.ID == "" {
		return "", gateway.Malformed(gatewayName, "checkoutCreate returned no checkout id")
	}
	return out.CheckoutCreate.Checkout.ID, nil
}

func (c *Client) CreateOrder(ctx context.Context, checkoutID, merchantID string) (id string, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "order_create", started, err) }()

	vars := map[string]any{
		"id":       checkoutID,
		"metadata": []metadataItem{{Key: "merchant_id", Value: merchantID}},
	}
	var out struct {
		OrderCreateFromCheckout struct {
			Order  *node           `json:"order"`
			Errors []mutationError `json:"errors"`
		} `json:"orderCreateFromCheckout"`
	}
	if err := c.do(ctx, orderCreateFromCheckoutMutation, vars, &out); err != nil {
		return "", err
	}
	if err := inBand("orderCreateFromCheckout", out.OrderCreateFromCheckout.Errors); err != nil {
		return "", err
	}
	if out.OrderCreateFromCheckout.Order == nil || out.OrderCreateFromCheckout.Order.ID == "" {
		return "", gateway.Malformed(gatewayName, "orderCreateFromCheckout returned no order id")
	}
	return out.OrderCreateFromCheckout.Order.ID, nil
}

func (c *Client) PushCompletion(ctx context.Context, in domain.CompletionInput) (err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "transaction_create", started, err) }()

	vars := map[string]any{
		"id": in.OrderID,
		"transaction": map[string]any{
			"name":    transactionName,
			"message": in.Note,
			"amountCharged": map[string]any{
				"amount":   in.Amount.InexactFloat64(),
				"currency": in.Currency,
			},
		},
	}
	var out struct {
		TransactionCreate struct {
			Transaction *node           `json:"transaction"`
			Errors      []mutationError `json:"errors"`
		} `json:"transactionCreate"`
	}
	if err := c.do(ctx, transactionCreateMutation, vars, &out); err != nil {
		return err
	}
	return inBand("transactionCreate", out.TransactionCreate.Errors)
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (o *domain.CommerceOrder, err error) {
	started := time.Now()
	defer func() { c.metrics.RecordGatewayCall(gatewayName, "order", started, err) }()

	var out struct {
		Order *struct {
			ID       string         `json:"id"`
			Status   string         `json:"status"`
			Metadata []metadataItem `json:"metadata"`
		} `json:"order"`
	}
	if err := c.do(ctx, orderQuery, map[string]any{"id": orderID}, &out); err != nil {
		return nil, err
	}
	if out.Order == nil {
		return nil, domain.ErrOrderNotFound
	}
	metadata := make(map[string]string, len(out.Order.Metadata))
	for _, item := range out.Order.Metadata {
		metadata[item.Key] = item.Value
	}
	return &domain.CommerceOrder{ID: out.Order.ID, Status: out.Order.Status, Metadata: metadata}, nil
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", gatewayName, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", gatewayName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

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

	var envelope response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return gateway.Malformed(gatewayName, "%v", err)
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return fmt.Errorf("%s: %w: %s", gatewayName, domain.ErrGateway, strings.Join(messages, "; "))
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return gateway.Malformed(gatewayName, "empty data")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return gateway.Malformed(gatewayName, "%v", err)
	}
	return nil
}

func inBand(op string, errs []mutationError) error {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Field != "" {
			messages = append(messages, e.Field+": "+e.Message)
			continue
		}
		messages = append(messages, e.Message)
	}
	return fmt.Errorf("%s: %w: %s: %s", gatewayName, domain.ErrGateway, op, strings.Join(messages, "; "))
}
