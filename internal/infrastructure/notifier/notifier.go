// Package notifier delivers buyer notifications (SMS codes) through the messaging provider's HTTP API.
package notifier

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
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/gateway"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
)

const gatewayName = "notifier"

type HTTPNotifier struct {
	url        string
	token      string
	httpClient *http.Client
	metrics    *metrics.FulfillmentMetrics
}

func NewHTTPNotifier(cfg config.Notifier, m *metrics.FulfillmentMetrics) *HTTPNotifier {
	return &HTTPNotifier{
		url:        cfg.URL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
	}
}

// Send posts the message and reports the provider verdict. A provider refusal is ok=false with a nil error.
func (n *HTTPNotifier) Send(ctx context.Context, purpose, target string, params map[string]string) (ok bool, info string, err error) {
	started := time.Now()
	defer func() { n.metrics.RecordGatewayCall(gatewayName, purpose, started, err) }()

	body, err := json.Marshal(sendRequest{Purpose: purpose, Target: NormalizePhone(target), Params: params})
	if err != nil {
		return false, "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return false, "", fmt.Errorf("%s: build request: %w", gatewayName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return false, "", gateway.Transport(gatewayName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, "", gateway.Transport(gatewayName, err)
	}
	if !gateway.IsSuccess(resp.StatusCode) {
		return false, "", gateway.Status(gatewayName, resp.StatusCode, raw)
	}

	var out sendResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, "", gateway.Malformed(gatewayName, "%v", err)
	}
	info = out.Description
	if out.MessageID != "" {
		info = strings.TrimSpace(info + " id=" + out.MessageID)
	}
	return out.OK, info, nil
}

// NormalizePhone keeps digits only and rewrites a leading 8 of an 11-digit number to 7.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '8' {
		digits = "7" + digits[1:]
	}
	return digits
}
