package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/app/service/catalog"
	"github.com/fatflowers/paylink/internal/app/service/checkout"
	"github.com/fatflowers/paylink/pkg/types"
)

type createSubscriptionRequest struct {
	CompanyName string  `json:"companyName"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Email       string  `json:"email"`
}

type createSubscriptionResponse struct {
	CheckoutURL    string `json:"checkout_url,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
	Message        string `json:"message"`
}

// @Summary      Create subscription
// @Description  Without an email, creates a subscription-plan record and returns its checkout URL. With an email, creates the provider plan and enrolls the customer directly.
// @Tags         Subscriptions
// @Accept       json
// @Produce      json
// @Param        request body handlers.createSubscriptionRequest true "Subscription details"
// @Success      200  {object}  handlers.createSubscriptionResponse
// @Failure      400  {object}  response.Error
// @Router       /subscriptions [post]
func ApiCreateSubscription(log *zap.SugaredLogger, cat *catalog.Service, co *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.CompanyName == "" || req.ProductName == "" || req.Price <= 0 {
			badRequest(c, "missing required fields")
			return
		}

		if req.Email != "" {
			subID, err := co.CreateDirectSubscription(c.Request.Context(), checkout.DirectSubscriptionRequest{
				CompanyName: req.CompanyName,
				ProductName: req.ProductName,
				Price:       req.Price,
				Email:       req.Email,
			})
			if err != nil {
				writeError(c, log, err)
				return
			}
			c.JSON(http.StatusOK, createSubscriptionResponse{
				SubscriptionID: subID,
				Message:        "Subscription created successfully",
			})
			return
		}

		link, err := cat.CreateLink(c.Request.Context(), types.KindSubscription, catalog.CreateLinkRequest{
			CompanyName: req.CompanyName,
			ProductName: req.ProductName,
			Description: req.Description,
			Price:       req.Price,
			Origin:      c.GetHeader("Origin"),
		})
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, createSubscriptionResponse{
			CheckoutURL: link.URL,
			Message:     "Subscription plan created",
		})
	}
}
