package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/app/service/checkout"
	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/pkg/logctx"
	"github.com/fatflowers/paylink/pkg/response"
)

// writeError translates service/adapter errors into the machine-readable
// error body. Upstream detail stays in the server-side log; the client only
// sees a generic message plus the kind.
func writeError(c *gin.Context, log *zap.SugaredLogger, err error) {
	kind := response.KindInternal
	msg := "internal error"

	var pe *nowpayments.ProviderError
	switch {
	case errors.Is(err, store.ErrNotFound) || errors.Is(err, nowpayments.ErrNotFound):
		kind, msg = response.KindNotFound, "not found"
	case errors.Is(err, store.ErrUnsupported):
		kind, msg = response.KindUnsupported, "operation not supported by the configured backend"
	case errors.Is(err, store.ErrStoreUnavailable):
		kind, msg = response.KindStoreUnavailable, "record store is not configured"
	case errors.Is(err, checkout.ErrPriceUnresolved):
		kind, msg = response.KindValidation, "product has no valid price"
	case errors.As(err, &pe), errors.Is(err, nowpayments.ErrNotConfigured):
		kind, msg = response.KindProvider, "payment provider request failed"
	}

	logctx.FromGin(c, log).Errorw("request_failed",
		"kind", string(kind),
		"error", err.Error(),
	)
	c.JSON(kind.Status(), response.Err(kind, msg))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(response.KindValidation.Status(), response.Err(response.KindValidation, msg))
}
