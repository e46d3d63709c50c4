package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/app/service/catalog"
	"github.com/fatflowers/paylink/pkg/types"
)

type createLinkRequest struct {
	CompanyName string  `json:"companyName"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	LogoURL     string  `json:"merchantLogo"`
	Price       float64 `json:"price"`
}

type createLinkResponse struct {
	CheckoutURL string `json:"checkout_url,omitempty"`
	InvoiceURL  string `json:"invoice_url,omitempty"`
	Message     string `json:"message"`
}

// @Summary      Create payment link
// @Description  Creates a one-time payment product record and returns its shareable checkout URL.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body handlers.createLinkRequest true "Payment link details"
// @Success      200  {object}  handlers.createLinkResponse
// @Failure      400  {object}  response.Error
// @Router       /create-payment-link [post]
func ApiCreatePaymentLink(log *zap.SugaredLogger, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.CompanyName == "" || req.ProductName == "" || req.Price <= 0 {
			badRequest(c, "missing required fields")
			return
		}

		link, err := cat.CreateLink(c.Request.Context(), types.KindOneTime, catalog.CreateLinkRequest{
			CompanyName: req.CompanyName,
			ProductName: req.ProductName,
			Description: req.Description,
			LogoURL:     req.LogoURL,
			Price:       req.Price,
			Origin:      c.GetHeader("Origin"),
		})
		if err != nil {
			writeError(c, log, err)
			return
		}

		out := createLinkResponse{Message: "Payment link created"}
		if link.Direct {
			out.InvoiceURL = link.URL
		} else {
			out.CheckoutURL = link.URL
		}
		c.JSON(http.StatusOK, out)
	}
}
