package payments

import (
	"context"

	"github.com/paychain/paychain/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/paychain/paychain/services/payments PaymentRepo

// PaymentRepo defines the payment data access layer
type PaymentRepo interface {
	// CreateTransaction inserts a new PENDING transaction
	CreateTransaction(ctx context.Context, txn *models.Transaction) error

	// FinalizeTransaction flips a transaction to a terminal collection
	// status and stamps completed_at. providerRef is the gateway receipt
	// when one exists. Returns ErrInvalidState when the transaction is
	// no longer PENDING, so a lost race never re-fires notifications.
	FinalizeTransaction(ctx context.Context, transactionID, status string, providerRef *string) error

	// MergeTransactionMetadata merges the patch into the transaction's
	// metadata JSONB without clobbering existing keys
	MergeTransactionMetadata(ctx context.Context, transactionID string, patch models.Metadata) error

	// GetTransactionByCheckoutRequestID resolves a transaction from the
	// gateway correlation id stored in its metadata
	GetTransactionByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*models.Transaction, error)

	// MarkCallbackProcessed claims a callback correlation id for
	// processing, reporting false when another ingest already claimed it
	MarkCallbackProcessed(ctx context.Context, checkoutRequestID string) (bool, error)

	// ReleaseCallbackClaim drops a dedup claim so the gateway's next
	// retry is processed; called when ingestion fails after the claim
	ReleaseCallbackClaim(ctx context.Context, checkoutRequestID string) error
}
