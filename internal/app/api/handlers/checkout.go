package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/app/service/checkout"
	"github.com/fatflowers/paylink/pkg/types"
)

// checkoutSubmitRequest deliberately has no price field: the charged amount
// is always re-read from the stored record.
type checkoutSubmitRequest struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Type      string `json:"type"`
}

type checkoutSubmitResponse struct {
	InvoiceURL     string `json:"invoice_url,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// @Summary      Submit checkout
// @Description  Resolves the product server-side and creates the provider invoice or subscription, returning the redirect URL.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body handlers.checkoutSubmitRequest true "Checkout submission"
// @Success      200  {object}  handlers.checkoutSubmitResponse
// @Failure      400  {object}  response.Error
// @Failure      404  {object}  response.Error
// @Router       /checkout/submit [post]
func ApiCheckoutSubmit(log *zap.SugaredLogger, co *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutSubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.ProductID == "" {
			badRequest(c, "missing productId")
			return
		}
		kind := types.KindFromQuery(req.Type)
		if kind == types.KindSubscription && req.Email == "" {
			badRequest(c, "missing email")
			return
		}

		res, err := co.Submit(c.Request.Context(), checkout.SubmitRequest{
			Ref:   types.ProductRef{Kind: kind, ID: req.ProductID},
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			writeError(c, log, err)
			return
		}

		if res.Raw != nil {
			c.Data(http.StatusOK, "application/json", res.Raw)
			return
		}
		c.JSON(http.StatusOK, checkoutSubmitResponse{
			InvoiceURL:     res.InvoiceURL,
			SubscriptionID: res.SubscriptionID,
		})
	}
}
