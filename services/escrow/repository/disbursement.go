package repository

import (
	"context"
	"fmt"

	"github.com/paychain/paychain/internal/pkg/models"
)

// CreateDisbursements inserts the payout legs and flips the hold to
// DISBURSED atomically, stamping disbursed_at in the hold's metadata
func (r *EscrowRepo) CreateDisbursements(ctx context.Context, holdID string, legs []*models.Disbursement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO disbursements (
			id, hold_id, account_id, amount, currency, recipient_phone,
			recipient_name, payment_method, status, metadata, created_at
		) VALUES (
			:id, :hold_id, :account_id, :amount, :currency, :recipient_phone,
			:recipient_name, :payment_method, :status, :metadata, NOW()
		)`
	for _, leg := range legs {
		if _, err := tx.NamedExecContext(ctx, insert, leg); err != nil {
			return fmt.Errorf("failed to insert disbursement %s: %w", leg.ID, err)
		}
	}

	flip := `
		UPDATE escrow_holds
		SET status = $2,
		    metadata = COALESCE(metadata, '{}'::jsonb) || jsonb_build_object('disbursed_at', NOW())
		WHERE id = $1`
	if _, err := tx.ExecContext(ctx, flip, holdID, models.HoldStatusDisbursed); err != nil {
		return fmt.Errorf("failed to mark hold disbursed: %w", err)
	}

	return tx.Commit()
}

// FinalizeDisbursement records a payout leg's terminal outcome
func (r *EscrowRepo) FinalizeDisbursement(ctx context.Context, disbursementID string, success bool, providerRef, failureReason string) error {
	if success {
		query := `
			UPDATE disbursements
			SET status = $2, provider_ref = $3, completed_at = NOW()
			WHERE id = $1 AND status = $4`
		_, err := r.db.ExecContext(ctx, query,
			disbursementID, models.DisbursementStatusCompleted, providerRef, models.DisbursementStatusQueued)
		if err != nil {
			return fmt.Errorf("failed to complete disbursement: %w", err)
		}
		return nil
	}

	query := `
		UPDATE disbursements
		SET status = $2, failure_reason = $3, failed_at = NOW()
		WHERE id = $1 AND status = $4`
	_, err := r.db.ExecContext(ctx, query,
		disbursementID, models.DisbursementStatusFailed, failureReason, models.DisbursementStatusQueued)
	if err != nil {
		return fmt.Errorf("failed to fail disbursement: %w", err)
	}

	return nil
}
