package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/app/service/catalog"
	"github.com/fatflowers/paylink/internal/app/service/checkout"
	nh "github.com/fatflowers/paylink/internal/app/service/notification"
)

// RegisterCheckoutRoutes mounts the checkout surface on r. The server calls
// this twice: once bare and once under /api, since both aliases are live.
func RegisterCheckoutRoutes(r gin.IRouter, log *zap.SugaredLogger, cat *catalog.Service, co *checkout.Service, notif *nh.Handler) {
	r.POST("/create-payment-link", ApiCreatePaymentLink(log, cat))
	r.POST("/subscriptions", ApiCreateSubscription(log, cat, co))
	r.POST("/create-subscription", ApiCreateSubscription(log, cat, co))
	r.GET("/products", ApiListProducts(log, cat))
	r.GET("/products/:id", ApiGetProduct(log, cat))
	r.DELETE("/products/:id", ApiDeleteProduct(log, cat))
	r.POST("/checkout/submit", ApiCheckoutSubmit(log, co))
	r.POST("/webhook/nowpayments", ApiNOWPaymentsWebhook(notif))
}
