package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/middleware"
	httphandler "github.com/paychain/paychain/services/escrow/handler/http"
)

// RegisterRoutes wires the escrow endpoints onto the Echo instance
func RegisterRoutes(e *echo.Echo, h *httphandler.EscrowHandler, resolver middleware.KeyResolver) {
	holds := e.Group("/v1/holds", middleware.APIKeyAuth(resolver))

	holds.POST("", h.Hold)
	holds.POST("/:id/release", h.Release)
	holds.POST("/:id/disburse", h.Disburse)
}
