package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/middleware"
	httphandler "github.com/paychain/paychain/services/payments/handler/http"
)

// RegisterRoutes wires the payment endpoints onto the Echo instance. The
// gateway callback is unauthenticated: Daraja carries no API key, and the
// handler correlates by checkout request id only.
func RegisterRoutes(e *echo.Echo, h *httphandler.PaymentHandler, resolver middleware.KeyResolver) {
	v1 := e.Group("/v1")

	charges := v1.Group("/charges", middleware.APIKeyAuth(resolver))
	charges.POST("", h.Charge)

	v1.POST("/callbacks/mpesa", h.MpesaCallback)
}
