package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/paychain/paychain/internal/pkg/database"
	"github.com/paychain/paychain/internal/pkg/models"
)

// EscrowRepo persists escrow holds and disbursements in Postgres
type EscrowRepo struct {
	db *sqlx.DB
}

// NewEscrowRepo creates a new escrow repository
func NewEscrowRepo(client *database.PostgresClient) *EscrowRepo {
	return &EscrowRepo{db: client.GetDB()}
}

// GetAccountTransaction returns the transaction if it exists and is owned
// by the account
func (r *EscrowRepo) GetAccountTransaction(ctx context.Context, accountID, transactionID string) (*models.Transaction, error) {
	query := `
		SELECT id, account_id, amount, currency, phone, payment_method,
		       description, status, fee_amount, fee_percentage, external_ref,
		       redirect_url, cancel_url, merchant_name, checkout_url,
		       provider_ref, metadata, created_at, completed_at
		FROM transactions
		WHERE id = $1 AND account_id = $2`

	var txn models.Transaction
	if err := r.db.GetContext(ctx, &txn, query, transactionID, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// HasActiveHold reports whether the transaction already has a HELD hold
func (r *EscrowRepo) HasActiveHold(ctx context.Context, transactionID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM escrow_holds WHERE transaction_id = $1 AND status = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, transactionID, models.HoldStatusHeld); err != nil {
		return false, fmt.Errorf("failed to check active hold: %w", err)
	}

	return exists, nil
}

// CreateHold inserts the hold and flips its transaction to HELD atomically
func (r *EscrowRepo) CreateHold(ctx context.Context, hold *models.EscrowHold) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO escrow_holds (
			id, account_id, transaction_id, amount, currency, phone,
			payment_method, status, description, release_method, expires_at,
			metadata, created_at
		) VALUES (
			:id, :account_id, :transaction_id, :amount, :currency, :phone,
			:payment_method, :status, :description, :release_method, :expires_at,
			:metadata, NOW()
		)`
	if _, err := tx.NamedExecContext(ctx, insert, hold); err != nil {
		return fmt.Errorf("failed to insert hold: %w", err)
	}

	flip := `UPDATE transactions SET status = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, flip, hold.TransactionID, models.TransactionStatusHeld); err != nil {
		return fmt.Errorf("failed to mark transaction held: %w", err)
	}

	return tx.Commit()
}

// GetHold returns the hold if it exists and is owned by the account
func (r *EscrowRepo) GetHold(ctx context.Context, accountID, holdID string) (*models.EscrowHold, error) {
	query := `
		SELECT id, account_id, transaction_id, amount, currency, phone,
		       payment_method, status, description, release_method,
		       expires_at, released_at, metadata, created_at
		FROM escrow_holds
		WHERE id = $1 AND account_id = $2`

	var hold models.EscrowHold
	if err := r.db.GetContext(ctx, &hold, query, holdID, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hold: %w", err)
	}

	return &hold, nil
}

// ReleaseHold flips the hold to RELEASED and its transaction, when linked,
// to RELEASED atomically. The release_method becomes "api".
func (r *EscrowRepo) ReleaseHold(ctx context.Context, holdID string, transactionID *string, releasedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	release := `
		UPDATE escrow_holds
		SET status = $2, released_at = $3, release_method = 'api'
		WHERE id = $1`
	if _, err := tx.ExecContext(ctx, release, holdID, models.HoldStatusReleased, releasedAt); err != nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}

	if transactionID != nil {
		flip := `UPDATE transactions SET status = $2 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, flip, *transactionID, models.TransactionStatusReleased); err != nil {
			return fmt.Errorf("failed to mark transaction released: %w", err)
		}
	}

	return tx.Commit()
}
