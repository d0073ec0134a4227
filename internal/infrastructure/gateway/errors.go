// Package gateway translates transport level failures of outgoing partner calls into domain errors.
package gateway

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

// Transport wraps a failed round trip (dial error, timeout, canceled context) as a gateway failure.
func Transport(name string, err error) error {
	return fmt.Errorf("%s: %w: %w", name, domain.ErrGateway, err)
}

// Status converts a non-2xx response into ErrRateLimited for 429 and ErrGateway otherwise.
func Status(name string, code int, body []byte) error {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 256 {
		snippet = snippet[:256]
	}
	if code == http.StatusTooManyRequests {
		return fmt.Errorf("%s: %w: status %d", name, domain.ErrRateLimited, code)
	}
	return fmt.Errorf("%s: %w: status %d: %s", name, domain.ErrGateway, code, snippet)
}

// Malformed reports a response that could not be interpreted.
func Malformed(name, format string, args ...any) error {
	return fmt.Errorf("%s: %w: malformed response: %s", name, domain.ErrGateway, fmt.Sprintf(format, args...))
}

func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
