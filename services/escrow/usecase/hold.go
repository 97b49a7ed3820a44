package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
)

// Hold defaults applied when the request omits them
const (
	DefaultHoldCondition   = "manual"
	DefaultHoldExpiryHours = 72
)

// Hold locks a successfully collected transaction in escrow. Only SUCCESS
// transactions can be held, and a transaction carries at most one active
// hold.
func (u *escrowUC) Hold(ctx context.Context, account *models.Account, mode models.Mode, req *models.HoldRequest) (*models.HoldResponse, error) {
	txn, err := u.repo.GetAccountTransaction(ctx, account.ID, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != models.TransactionStatusSuccess {
		return nil, fmt.Errorf("%w: transaction is %s, must be %s",
			models.ErrInvalidState, txn.Status, models.TransactionStatusSuccess)
	}

	held, err := u.repo.HasActiveHold(ctx, txn.ID)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, models.ErrConflict
	}

	condition := req.Condition
	if condition == "" {
		condition = DefaultHoldCondition
	}
	expiryHours := req.ExpiryHours
	if expiryHours <= 0 {
		expiryHours = DefaultHoldExpiryHours
	}

	currency := txn.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	hold := &models.EscrowHold{
		ID:            utils.GenerateID("hold"),
		AccountID:     account.ID,
		TransactionID: &txn.ID,
		Amount:        txn.Amount,
		Currency:      currency,
		Phone:         txn.Phone,
		PaymentMethod: txn.PaymentMethod,
		Status:        models.HoldStatusHeld,
		ReleaseMethod: condition,
		ExpiresAt:     u.now().Add(time.Duration(expiryHours) * time.Hour),
		Metadata:      models.Metadata{"mode": string(mode)},
	}
	if req.Description != "" {
		hold.Description = &req.Description
	}

	if err := u.repo.CreateHold(ctx, hold); err != nil {
		return nil, fmt.Errorf("failed to create hold: %w", err)
	}

	logger.Info("Hold created",
		logger.String("hold_id", hold.ID),
		logger.String("transaction_id", txn.ID),
		logger.Int64("amount", hold.Amount))

	data := map[string]interface{}{
		"hold_id":        hold.ID,
		"transaction_id": txn.ID,
		"amount":         hold.Amount,
		"currency":       hold.Currency,
		"expires_at":     hold.ExpiresAt,
		"condition":      condition,
		"mode":           mode,
	}
	if err := u.dispatcher.Dispatch(ctx, account.ID, models.EventHoldCreated, data); err != nil {
		logger.Error("Failed to dispatch hold webhook",
			logger.String("hold_id", hold.ID),
			logger.Err(err))
	}

	event := &models.HoldEvent{
		HoldID:        hold.ID,
		TransactionID: txn.ID,
		AccountID:     account.ID,
		Amount:        hold.Amount,
		Currency:      hold.Currency,
		Status:        models.HoldStatusHeld,
		Mode:          mode,
		Timestamp:     u.now(),
	}
	if err := u.gw.PublishHoldEvent(ctx, event); err != nil {
		logger.Error("Failed to publish hold event",
			logger.String("hold_id", hold.ID),
			logger.Err(err))
	}

	return &models.HoldResponse{
		HoldID:    hold.ID,
		Status:    models.HoldStatusHeld,
		ExpiresAt: hold.ExpiresAt,
		Amount:    hold.Amount,
		Currency:  hold.Currency,
		Mode:      mode,
	}, nil
}
