package escrow

import (
	"context"

	"github.com/paychain/paychain/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/paychain/paychain/services/escrow EscrowUC

// EscrowUC defines the escrow lifecycle use cases
type EscrowUC interface {
	// Hold locks a successfully collected transaction in escrow
	Hold(ctx context.Context, account *models.Account, mode models.Mode, req *models.HoldRequest) (*models.HoldResponse, error)

	// Release marks held funds as releasable to recipients
	Release(ctx context.Context, account *models.Account, mode models.Mode, holdID string) (*models.ReleaseResponse, error)

	// Disburse fans a released hold out to recipients by percentage splits
	Disburse(ctx context.Context, account *models.Account, mode models.Mode, req *models.DisburseRequest) (*models.DisburseResponse, error)
}
