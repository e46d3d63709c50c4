// Package automation forwards checkout submissions to a no-code automation
// webhook. In that deployment variant the scenario behind the webhook owns
// order persistence and invoice creation; this service only relays the
// payload and passes the scenario's response through.
package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/pkg/config"
)

type Forwarder struct {
	url    string
	client *http.Client
	log    *zap.SugaredLogger
}

func New(cfg *config.Config, log *zap.SugaredLogger) *Forwarder {
	return &Forwarder{
		url:    cfg.Automation.WebhookURL,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Enabled reports whether a webhook URL is configured.
func (f *Forwarder) Enabled() bool {
	return f != nil && f.url != ""
}

// Submission is the payload the automation scenario expects.
type Submission struct {
	ProductID     string `json:"productId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	PaymentType   string `json:"paymentType"`
	Timestamp     string `json:"timestamp"`
}

// Forward posts the submission and returns the scenario's raw JSON response
// verbatim; the checkout endpoint passes it through to the client.
func (f *Forwarder) Forward(ctx context.Context, sub Submission) (json.RawMessage, error) {
	if sub.Timestamp == "" {
		sub.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	raw, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("automation: marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("automation: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("automation: forward: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("automation: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.log.Errorw("automation_error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("automation: webhook status %d", resp.StatusCode)
	}
	return json.RawMessage(body), nil
}

var Module = fx.Options(
	fx.Provide(New),
)
