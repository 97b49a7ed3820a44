package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/middleware"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
)

// Disburse handles POST /v1/holds/:id/disburse
func (h *EscrowHandler) Disburse(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return utils.UnauthorizedResponse(c, "")
	}
	mode := middleware.ModeFromContext(c)

	holdID := c.Param("id")
	if holdID == "" {
		return utils.BadRequestResponse(c, "hold id is required")
	}

	var req models.DisburseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.HoldID = holdID

	resp, err := h.usecase.Disburse(c.Request().Context(), account, mode, &req)
	if err != nil {
		return escrowErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Disbursement initiated", resp)
}
