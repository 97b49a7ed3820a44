package usecase

import (
	"context"
	"fmt"

	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
)

// Release marks held funds as releasable. Only HELD holds can be released;
// the linked transaction follows the hold to RELEASED.
func (u *escrowUC) Release(ctx context.Context, account *models.Account, mode models.Mode, holdID string) (*models.ReleaseResponse, error) {
	hold, err := u.repo.GetHold(ctx, account.ID, holdID)
	if err != nil {
		return nil, err
	}
	if hold.Status != models.HoldStatusHeld {
		return nil, fmt.Errorf("%w: hold is %s, must be %s",
			models.ErrInvalidState, hold.Status, models.HoldStatusHeld)
	}

	releasedAt := u.now()
	if err := u.repo.ReleaseHold(ctx, hold.ID, hold.TransactionID, releasedAt); err != nil {
		return nil, fmt.Errorf("failed to release hold: %w", err)
	}

	logger.Info("Hold released",
		logger.String("hold_id", hold.ID),
		logger.Int64("amount", hold.Amount))

	data := map[string]interface{}{
		"hold_id":     hold.ID,
		"amount":      hold.Amount,
		"currency":    hold.Currency,
		"released_at": releasedAt,
		"mode":        mode,
	}
	transactionID := ""
	if hold.TransactionID != nil {
		transactionID = *hold.TransactionID
		data["transaction_id"] = transactionID
	}
	if err := u.dispatcher.Dispatch(ctx, account.ID, models.EventHoldReleased, data); err != nil {
		logger.Error("Failed to dispatch release webhook",
			logger.String("hold_id", hold.ID),
			logger.Err(err))
	}

	event := &models.HoldEvent{
		HoldID:        hold.ID,
		TransactionID: transactionID,
		AccountID:     account.ID,
		Amount:        hold.Amount,
		Currency:      hold.Currency,
		Status:        models.HoldStatusReleased,
		Mode:          mode,
		Timestamp:     releasedAt,
	}
	if err := u.gw.PublishHoldEvent(ctx, event); err != nil {
		logger.Error("Failed to publish release event",
			logger.String("hold_id", hold.ID),
			logger.Err(err))
	}

	return &models.ReleaseResponse{
		HoldID:     hold.ID,
		Status:     models.HoldStatusReleased,
		Amount:     hold.Amount,
		Currency:   hold.Currency,
		ReleasedAt: releasedAt,
		Mode:       mode,
	}, nil
}
