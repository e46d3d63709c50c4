package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	nh "github.com/fatflowers/paylink/internal/app/service/notification"
	"github.com/fatflowers/paylink/pkg/logctx"
)

// @Summary      NOWPayments webhook
// @Description  Accepts a payment-status IPN callback. Always answers 200 so the provider does not retry payloads it cannot fix.
// @Tags         Webhook
// @Accept       json
// @Success      200
// @Router       /webhook/nowpayments [post]
func ApiNOWPaymentsWebhook(h *nh.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		logctx.FromGin(c, h.Logger).Infow("webhook_nowpayments_received")

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logctx.FromGin(c, h.Logger).Warnw("webhook_body_read_error", "error", err.Error())
			c.Status(http.StatusOK)
			return
		}

		h.Handle(c.Request.Context(), c.GetHeader("x-nowpayments-sig"), body)
		c.Status(http.StatusOK)
	}
}
