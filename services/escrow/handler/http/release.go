package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/middleware"
	"github.com/paychain/paychain/internal/utils"
)

// Release handles POST /v1/holds/:id/release
func (h *EscrowHandler) Release(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return utils.UnauthorizedResponse(c, "")
	}
	mode := middleware.ModeFromContext(c)

	holdID := c.Param("id")
	if holdID == "" {
		return utils.BadRequestResponse(c, "hold id is required")
	}

	resp, err := h.usecase.Release(c.Request().Context(), account, mode, holdID)
	if err != nil {
		return escrowErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hold released", resp)
}
