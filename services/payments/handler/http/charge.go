package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/middleware"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
	"github.com/paychain/paychain/services/payments"
)

// PaymentHandler serves the payment collection endpoints
type PaymentHandler struct {
	usecase payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(usecase payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{usecase: usecase}
}

// Charge handles POST /v1/charges
func (h *PaymentHandler) Charge(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return utils.UnauthorizedResponse(c, "")
	}
	mode := middleware.ModeFromContext(c)

	var req models.ChargeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.ClientIP = c.RealIP()

	resp, err := h.usecase.Charge(c.Request().Context(), account, mode, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidAmount),
			errors.Is(err, models.ErrInvalidPhone),
			errors.Is(err, models.ErrUnsupportedPhone):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrGatewayFailure):
			return utils.BadGatewayResponse(c, models.ErrGatewayFailure.Error())
		default:
			logger.Error("Charge failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Charge initiated", resp)
}
