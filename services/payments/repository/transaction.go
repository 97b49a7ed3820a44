package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paychain/paychain/internal/pkg/constants"
	"github.com/paychain/paychain/internal/pkg/database"
	"github.com/paychain/paychain/internal/pkg/models"
)

// PaymentRepo persists transactions in Postgres and tracks callback
// deduplication in Redis
type PaymentRepo struct {
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(client *database.PostgresClient, redis *database.RedisClient) *PaymentRepo {
	return &PaymentRepo{
		db:    client.GetDB(),
		redis: redis,
	}
}

// CreateTransaction inserts a new PENDING transaction
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, account_id, amount, currency, phone, payment_method,
			description, status, fee_amount, fee_percentage, external_ref,
			redirect_url, cancel_url, merchant_name, checkout_url, metadata,
			created_at
		) VALUES (
			:id, :account_id, :amount, :currency, :phone, :payment_method,
			:description, :status, :fee_amount, :fee_percentage, :external_ref,
			:redirect_url, :cancel_url, :merchant_name, :checkout_url, :metadata,
			NOW()
		)`

	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// FinalizeTransaction flips a PENDING transaction to a terminal collection
// status. A transaction already past PENDING is left untouched and reported
// as ErrInvalidState so callers do not re-fire notifications.
func (r *PaymentRepo) FinalizeTransaction(ctx context.Context, transactionID, status string, providerRef *string) error {
	query := `
		UPDATE transactions
		SET status = $2, provider_ref = COALESCE($3, provider_ref), completed_at = NOW()
		WHERE id = $1 AND status = $4`

	res, err := r.db.ExecContext(ctx, query, transactionID, status, providerRef, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to finalize transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finalize transaction: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %s is not PENDING", models.ErrInvalidState, transactionID)
	}

	return nil
}

// MergeTransactionMetadata merges the patch into the transaction's metadata
// JSONB, overwriting only the patched keys
func (r *PaymentRepo) MergeTransactionMetadata(ctx context.Context, transactionID string, patch models.Metadata) error {
	query := `
		UPDATE transactions
		SET metadata = COALESCE(metadata, '{}'::jsonb) || $2
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, transactionID, patch); err != nil {
		return fmt.Errorf("failed to merge transaction metadata: %w", err)
	}

	return nil
}

// GetTransactionByCheckoutRequestID resolves a transaction from the gateway
// correlation id stored in its metadata
func (r *PaymentRepo) GetTransactionByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*models.Transaction, error) {
	query := `
		SELECT id, account_id, amount, currency, phone, payment_method,
		       description, status, fee_amount, fee_percentage, external_ref,
		       redirect_url, cancel_url, merchant_name, checkout_url,
		       provider_ref, metadata, created_at, completed_at
		FROM transactions
		WHERE metadata->>'checkout_request_id' = $1`

	var txn models.Transaction
	if err := r.db.GetContext(ctx, &txn, query, checkoutRequestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by checkout request id: %w", err)
	}

	return &txn, nil
}

// MarkCallbackProcessed claims a callback correlation id with a Redis SETNX.
// A false result means another ingest already claimed it.
func (r *PaymentRepo) MarkCallbackProcessed(ctx context.Context, checkoutRequestID string) (bool, error) {
	key := constants.CallbackDedupPrefix + checkoutRequestID

	claimed, err := r.redis.SetNX(ctx, key, "1", constants.CallbackDedupTTL)
	if err != nil {
		return false, fmt.Errorf("failed to claim callback: %w", err)
	}

	return claimed, nil
}

// ReleaseCallbackClaim drops the dedup claim so the gateway's next retry is
// processed again; used when ingestion fails after the claim was taken
func (r *PaymentRepo) ReleaseCallbackClaim(ctx context.Context, checkoutRequestID string) error {
	key := constants.CallbackDedupPrefix + checkoutRequestID

	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to release callback claim: %w", err)
	}

	return nil
}
