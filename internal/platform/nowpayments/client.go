// Package nowpayments is the payment provider adapter: hosted invoices,
// subscription plans, and customer subscriptions over the NOWPayments REST
// API. There is no vendor SDK; calls go through one context-aware HTTP
// client with a fixed timeout.
package nowpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/pkg/config"
)

const requestTimeout = 10 * time.Second

var (
	// ErrNotConfigured means the API key (or email/password for bearer-auth
	// endpoints) is absent. Surfaced on first use, never at startup.
	ErrNotConfigured = errors.New("nowpayments credentials not configured")
	// ErrNotFound maps the provider's 404, e.g. a subscription referencing
	// an unknown plan id.
	ErrNotFound = errors.New("not found at payment provider")
)

// ProviderError carries a non-2xx provider response. Callers surface it as a
// 502-class failure; the body is for server-side logs only.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("nowpayments: status %d: %s", e.Status, e.Body)
}

type authMode int

const (
	authNone authMode = iota
	authAPIKey
	authBearer
)

type Client struct {
	cfg    config.NOWPaymentsConfig
	client *http.Client
	log    *zap.SugaredLogger

	// Single-slot bearer token cache. mu is held across a refresh so two
	// concurrent expired observers produce exactly one /auth call.
	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func New(cfg *config.Config, log *zap.SugaredLogger) *Client {
	return &Client{
		cfg:    cfg.NOWPayments,
		client: &http.Client{Timeout: requestTimeout},
		log:    log,
	}
}

// IntervalDays is the configured recurring billing interval.
func (c *Client) IntervalDays() int {
	if c.cfg.IntervalDays <= 0 {
		return 30
	}
	return c.cfg.IntervalDays
}

func (c *Client) do(ctx context.Context, method, path string, mode authMode, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("nowpayments: marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("nowpayments: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch mode {
	case authAPIKey:
		if c.cfg.APIKey == "" {
			return fmt.Errorf("api key missing: %w", ErrNotConfigured)
		}
		req.Header.Set("x-api-key", c.cfg.APIKey)
	case authBearer:
		tok, err := c.bearerToken(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+tok)
		if c.cfg.APIKey != "" {
			req.Header.Set("x-api-key", c.cfg.APIKey)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("nowpayments: %s %s timed out: %w", method, path, err)
		}
		return fmt.Errorf("nowpayments: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("nowpayments: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Errorw("nowpayments_error", "method", method, "path", path, "status", resp.StatusCode, "body", string(raw))
		return &ProviderError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("nowpayments: decode response: %w", err)
		}
	}
	return nil
}

var Module = fx.Options(
	fx.Provide(New),
)
