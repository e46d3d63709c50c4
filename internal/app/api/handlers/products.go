package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/app/service/catalog"
	"github.com/fatflowers/paylink/pkg/types"
)

// productView is the customer-facing shape used by the checkout form.
type productView struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"productName"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CompanyName  string  `json:"companyName"`
	MerchantLogo string  `json:"merchantLogo,omitempty"`
	Type         string  `json:"type"`
}

type productDetailResponse struct {
	Product productView `json:"product"`
}

func refFromRequest(c *gin.Context) types.ProductRef {
	return types.ProductRef{
		Kind: types.KindFromQuery(c.Query("type")),
		ID:   c.Param("id"),
	}
}

// @Summary      Get product
// @Description  Fetches one product/plan record for the checkout form. Use type=sub for subscription plans.
// @Tags         Products
// @Produce      json
// @Param        id   path   string true  "Record id"
// @Param        type query  string false "sub for subscription plans"
// @Success      200  {object}  handlers.productDetailResponse
// @Failure      404  {object}  response.Error
// @Router       /products/{id} [get]
func ApiGetProduct(log *zap.SugaredLogger, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Get(c.Request.Context(), refFromRequest(c))
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, productDetailResponse{Product: productView{
			ID:           p.ID,
			ProductName:  p.ProductName,
			Description:  p.Description,
			Price:        p.Price,
			CompanyName:  p.CompanyName,
			MerchantLogo: p.LogoURL,
			Type:         p.Kind.Display(),
		}})
	}
}

type productListResponse struct {
	Products []*catalog.ListItem `json:"products"`
}

// @Summary      List products
// @Description  Merges one-time and subscription records, newest first.
// @Tags         Products
// @Produce      json
// @Success      200  {object}  handlers.productListResponse
// @Router       /products [get]
func ApiListProducts(log *zap.SugaredLogger, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cat.List(c.Request.Context())
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, productListResponse{Products: items})
	}
}

// @Summary      Delete product
// @Description  Removes one record. Backends with immutable history answer with kind "unsupported".
// @Tags         Products
// @Produce      json
// @Param        id   path   string true  "Record id"
// @Param        type query  string false "sub for subscription plans"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  response.Error
// @Failure      409  {object}  response.Error
// @Router       /products/{id} [delete]
func ApiDeleteProduct(log *zap.SugaredLogger, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cat.Delete(c.Request.Context(), refFromRequest(c)); err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
