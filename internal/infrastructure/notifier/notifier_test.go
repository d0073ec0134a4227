package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-fulfillment-service/internal/config"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+7 (701) 000-00-00": "77010000000",
		"87010000000":        "77010000000",
		"7010000000":         "7010000000",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestHTTPNotifier_Send(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"description":"queued","message_id":"42"}`))
	}))
	defer srv.Close()

	n := NewHTTPNotifier(config.Notifier{URL: srv.URL, Token: "t", Timeout: time.Second}, nil)
	ok, info, err := n.Send(context.Background(), "order_confirmation", "8 701 000 00 00", map[string]string{"code": "123456"})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "queued id=42", info)
	assert.Equal(t, "77010000000", got.Target)
	assert.Equal(t, "123456", got.Params["code"])
}

func TestHTTPNotifier_ProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	n := NewHTTPNotifier(config.Notifier{URL: srv.URL, Timeout: time.Second}, nil)
	ok, _, err := n.Send(context.Background(), "order_confirmation", "77010000000", nil)

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrGateway)
}
