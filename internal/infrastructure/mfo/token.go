package mfo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/gateway"
)

const (
	defaultTokenTTL = time.Hour
	expiryLeeway    = 30 * time.Second
)

// TokenSource logs in with username and password and reuses the access token until shortly before it expires.
type TokenSource struct {
	authURL    string
	username   string
	password   string
	httpClient *http.Client
	now        func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewTokenSource(authURL, username, password string, httpClient *http.Client) *TokenSource {
	return &TokenSource{
		authURL:    authURL,
		username:   username,
		password:   password,
		httpClient: httpClient,
		now:        time.Now,
	}
}

func (s *TokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expires) {
		return s.token, nil
	}
	token, err := s.login(ctx)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = s.expiry(token)
	return token, nil
}

// Invalidate drops the cached token so the next call logs in again.
func (s *TokenSource) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

func (s *TokenSource) login(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{"username": s.username, "password": s.password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: build auth request: %w", gatewayName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", gateway.Transport(gatewayName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", gateway.Transport(gatewayName, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", gateway.Status(gatewayName, resp.StatusCode, raw)
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", gateway.Malformed(gatewayName, "auth: %v", err)
	}
	if out.Access == "" {
		return "", gateway.Malformed(gatewayName, "auth: access token missing")
	}
	return out.Access, nil
}

// expiry reads exp from the unverified token claims. Tokens without a readable exp live for defaultTokenTTL.
func (s *TokenSource) expiry(token string) time.Time {
	fallback := s.now().Add(defaultTokenTTL)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Add(-expiryLeeway)
}
