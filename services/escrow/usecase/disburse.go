package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
)

const (
	// splitTolerance absorbs float noise when checking the 100% total
	splitTolerance = 0.01

	// statusDisbursing is the synchronous disburse response status; the
	// per-leg outcomes arrive asynchronously
	statusDisbursing = "DISBURSING"
)

// Disburse fans a released hold out to recipients by percentage splits.
// Legs are inserted QUEUED together with the hold flip; sandbox legs are
// then resolved by the simulator, live legs await the payout processor.
func (u *escrowUC) Disburse(ctx context.Context, account *models.Account, mode models.Mode, req *models.DisburseRequest) (*models.DisburseResponse, error) {
	if err := validateSplits(req.Splits); err != nil {
		return nil, err
	}

	hold, err := u.repo.GetHold(ctx, account.ID, req.HoldID)
	if err != nil {
		return nil, err
	}
	if hold.Status != models.HoldStatusReleased {
		return nil, fmt.Errorf("%w: hold is %s, must be %s",
			models.ErrInvalidState, hold.Status, models.HoldStatusReleased)
	}

	legs := make([]*models.Disbursement, 0, len(req.Splits))
	results := make([]models.SplitResult, 0, len(req.Splits))
	for _, split := range req.Splits {
		phone, err := utils.NormalizePhone(split.Phone)
		if err != nil {
			return nil, err
		}

		leg := &models.Disbursement{
			ID:             utils.GenerateID("disb"),
			HoldID:         hold.ID,
			AccountID:      account.ID,
			Amount:         int64(math.Round(float64(hold.Amount) * split.Percentage / 100)),
			Currency:       hold.Currency,
			RecipientPhone: phone,
			PaymentMethod:  models.ProviderMpesa,
			Status:         models.DisbursementStatusQueued,
			Metadata: models.Metadata{
				"mode":       string(mode),
				"percentage": split.Percentage,
			},
		}
		if split.Name != "" {
			name := split.Name
			leg.RecipientName = &name
		}
		legs = append(legs, leg)

		results = append(results, models.SplitResult{
			DisbursementID: leg.ID,
			Phone:          utils.MaskPhone(phone),
			Name:           split.Name,
			Amount:         leg.Amount,
			Percentage:     split.Percentage,
			Status:         models.DisbursementStatusQueued,
		})
	}

	if err := u.repo.CreateDisbursements(ctx, hold.ID, legs); err != nil {
		return nil, fmt.Errorf("failed to create disbursements: %w", err)
	}

	logger.Info("Disbursement fan-out created",
		logger.String("hold_id", hold.ID),
		logger.Int("legs", len(legs)),
		logger.Int64("total_amount", hold.Amount))

	if mode == models.ModeSandbox {
		for _, leg := range legs {
			u.schedulePayout(leg.ID)
		}
	}

	data := map[string]interface{}{
		"hold_id":      hold.ID,
		"splits":       results,
		"total_amount": hold.Amount,
		"currency":     hold.Currency,
		"mode":         mode,
	}
	if err := u.dispatcher.Dispatch(ctx, account.ID, models.EventDisburseSuccess, data); err != nil {
		logger.Error("Failed to dispatch disburse webhook",
			logger.String("hold_id", hold.ID),
			logger.Err(err))
	}

	event := &models.DisburseEvent{
		HoldID:      hold.ID,
		AccountID:   account.ID,
		TotalAmount: hold.Amount,
		Currency:    hold.Currency,
		Splits:      results,
		Mode:        mode,
		Timestamp:   u.now(),
	}
	if err := u.gw.PublishDisburseEvent(ctx, event); err != nil {
		logger.Error("Failed to publish disburse event",
			logger.String("hold_id", hold.ID),
			logger.Err(err))
	}

	return &models.DisburseResponse{
		HoldID:      hold.ID,
		Status:      statusDisbursing,
		TotalAmount: hold.Amount,
		Currency:    hold.Currency,
		Splits:      results,
		Mode:        mode,
	}, nil
}

// schedulePayout hands one leg to the simulator and records its outcome
func (u *escrowUC) schedulePayout(disbursementID string) {
	u.simulator.SchedulePayoutOutcome(func(success bool, providerRef string) {
		ctx := context.Background()

		failureReason := ""
		if !success {
			providerRef = ""
			failureReason = "Sandbox simulated failure"
		}
		if err := u.repo.FinalizeDisbursement(ctx, disbursementID, success, providerRef, failureReason); err != nil {
			logger.Error("Failed to finalize disbursement",
				logger.String("disbursement_id", disbursementID),
				logger.Err(err))
			return
		}

		logger.Info("Disbursement finalized",
			logger.String("disbursement_id", disbursementID),
			logger.Bool("success", success))
	})
}

// validateSplits requires at least one split, a phone and positive
// percentage on each, and a total of 100% within tolerance
func validateSplits(splits []models.Split) error {
	if len(splits) == 0 {
		return fmt.Errorf("%w: at least one split is required", models.ErrInvalidSplit)
	}

	total := 0.0
	for _, split := range splits {
		if split.Phone == "" || split.Percentage <= 0 {
			return fmt.Errorf("%w: each split must have phone and percentage", models.ErrInvalidSplit)
		}
		total += split.Percentage
	}
	if math.Abs(total-100) > splitTolerance {
		return fmt.Errorf("%w: percentages must total 100, got %g", models.ErrInvalidSplit, total)
	}

	return nil
}
