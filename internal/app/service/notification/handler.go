// Package notification handles the payment provider's IPN callbacks. Every
// variant of this system only observes them: a successful payment is logged
// with whatever context the order reference carries, and nothing is
// persisted.
package notification

import (
	"context"
	"encoding/json"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/pkg/orderref"
)

type Handler struct {
	Logger *zap.SugaredLogger
	np     *nowpayments.Client
}

func NewHandler(log *zap.SugaredLogger, np *nowpayments.Client) *Handler {
	return &Handler{Logger: log, np: np}
}

// IPN is the provider's callback payload. Only the fields this system
// observes are bound; the signature covers the raw body.
type IPN struct {
	PaymentStatus string `json:"payment_status"`
	OrderID       string `json:"order_id"`
}

func isSuccess(status string) bool {
	return status == "finished" || status == "confirmed"
}

// Handle processes one callback. It never fails: the provider must not
// retry indefinitely on a payload it cannot fix, so malformed input is
// logged and accepted.
func (h *Handler) Handle(ctx context.Context, sig string, body []byte) {
	if err := h.np.VerifyIPN(sig, body); err != nil {
		h.Logger.Warnw("ipn_signature_rejected", "error", err.Error())
		return
	}

	var ipn IPN
	if err := json.Unmarshal(body, &ipn); err != nil {
		h.Logger.Warnw("ipn_malformed", "error", err.Error())
		return
	}

	if !isSuccess(ipn.PaymentStatus) {
		h.Logger.Infow("ipn_ignored", "status", ipn.PaymentStatus)
		return
	}

	if ipn.OrderID == "" {
		h.Logger.Infow("payment_received", "order_id", "")
		return
	}

	ref, err := orderref.Decode(ipn.OrderID)
	if err != nil {
		// Store-backed payments carry the record id here instead of a
		// packed triple; log it raw.
		h.Logger.Infow("payment_received", "order_id", ipn.OrderID, "status", ipn.PaymentStatus)
		return
	}
	h.Logger.Infow("payment_received",
		"company", ref.CompanyName,
		"product", ref.ProductName,
		"price_usd", ref.Price,
		"status", ipn.PaymentStatus,
	)
}

// Module exposes the notification handler via Fx.
var Module = fx.Options(
	fx.Provide(NewHandler),
)
