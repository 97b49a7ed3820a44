package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/middleware"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
	"github.com/paychain/paychain/services/escrow"
)

// EscrowHandler serves the escrow lifecycle endpoints
type EscrowHandler struct {
	usecase escrow.EscrowUC
}

// NewEscrowHandler creates a new escrow handler
func NewEscrowHandler(usecase escrow.EscrowUC) *EscrowHandler {
	return &EscrowHandler{usecase: usecase}
}

// Hold handles POST /v1/holds
func (h *EscrowHandler) Hold(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return utils.UnauthorizedResponse(c, "")
	}
	mode := middleware.ModeFromContext(c)

	var req models.HoldRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.TransactionID == "" {
		return utils.BadRequestResponse(c, "transaction_id is required")
	}

	resp, err := h.usecase.Hold(c.Request().Context(), account, mode, &req)
	if err != nil {
		return escrowErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Hold created", resp)
}

// escrowErrorResponse maps domain errors to HTTP statuses
func escrowErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidState),
		errors.Is(err, models.ErrInvalidSplit),
		errors.Is(err, models.ErrInvalidPhone),
		errors.Is(err, models.ErrUnsupportedPhone):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("Escrow operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
