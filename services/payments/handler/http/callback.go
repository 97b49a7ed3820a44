package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
)

// MpesaCallback handles POST /v1/callbacks/mpesa, the asynchronous STK
// push confirmation from Daraja. The gateway is always acked with result
// code 0; anything else makes Daraja retry and alert.
func (h *PaymentHandler) MpesaCallback(c echo.Context) error {
	ack := models.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"}

	var envelope models.STKCallbackEnvelope
	if err := c.Bind(&envelope); err != nil {
		logger.Warn("Malformed STK callback", logger.Err(err))
		return c.JSON(http.StatusOK, ack)
	}

	if err := h.usecase.IngestCallback(c.Request().Context(), &envelope); err != nil {
		logger.Error("STK callback ingestion failed",
			logger.String("checkout_request_id", envelope.Body.StkCallback.CheckoutRequestID),
			logger.Err(err))
	}

	return c.JSON(http.StatusOK, ack)
}
