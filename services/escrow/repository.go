package escrow

import (
	"context"
	"time"

	"github.com/paychain/paychain/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/paychain/paychain/services/escrow EscrowRepo

// EscrowRepo defines the escrow data access layer. Multi-row writes
// (hold creation, disbursement fan-out) are transactional: the hold and
// its transaction never disagree about lifecycle state.
type EscrowRepo interface {
	// GetAccountTransaction returns the transaction if it exists and is
	// owned by the account
	GetAccountTransaction(ctx context.Context, accountID, transactionID string) (*models.Transaction, error)

	// HasActiveHold reports whether the transaction already has a HELD hold
	HasActiveHold(ctx context.Context, transactionID string) (bool, error)

	// CreateHold inserts the hold and flips its transaction to HELD in one
	// transaction
	CreateHold(ctx context.Context, hold *models.EscrowHold) error

	// GetHold returns the hold if it exists and is owned by the account
	GetHold(ctx context.Context, accountID, holdID string) (*models.EscrowHold, error)

	// ReleaseHold flips the hold to RELEASED (release_method becomes
	// "api") and its transaction, when linked, to RELEASED in one
	// transaction
	ReleaseHold(ctx context.Context, holdID string, transactionID *string, releasedAt time.Time) error

	// CreateDisbursements inserts the payout legs and flips the hold to
	// DISBURSED in one transaction, stamping disbursed_at in the hold's
	// metadata
	CreateDisbursements(ctx context.Context, holdID string, legs []*models.Disbursement) error

	// FinalizeDisbursement records a payout leg's terminal outcome
	FinalizeDisbursement(ctx context.Context, disbursementID string, success bool, providerRef, failureReason string) error
}
