package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterCheckoutRoutes_RegistersBothAliases(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := zap.NewNop().Sugar()
	RegisterCheckoutRoutes(r.Group("/"), log, nil, nil, nil)
	RegisterCheckoutRoutes(r.Group("/api"), log, nil, nil, nil)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	for _, target := range []string{
		"POST /create-payment-link",
		"POST /api/create-payment-link",
		"POST /subscriptions",
		"POST /create-subscription",
		"POST /api/subscriptions",
		"GET /products",
		"GET /products/:id",
		"DELETE /products/:id",
		"GET /api/products/:id",
		"POST /checkout/submit",
		"POST /api/checkout/submit",
		"POST /webhook/nowpayments",
		"POST /api/webhook/nowpayments",
	} {
		require.True(t, contains(target), target)
	}
}
