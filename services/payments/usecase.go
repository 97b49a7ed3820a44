package payments

import (
	"context"

	"github.com/paychain/paychain/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/paychain/paychain/services/payments PaymentUC

// PaymentUC defines the payment collection use cases
type PaymentUC interface {
	// Charge initiates a mobile-money collection for the calling account.
	// The response is synchronous and PENDING; the final outcome arrives
	// later through the gateway callback or the sandbox simulator.
	Charge(ctx context.Context, account *models.Account, mode models.Mode, req *models.ChargeRequest) (*models.ChargeResponse, error)

	// IngestCallback processes an asynchronous STK push confirmation.
	// It is idempotent: replayed confirmations for an already-finalized
	// transaction are acknowledged without effect.
	IngestCallback(ctx context.Context, envelope *models.STKCallbackEnvelope) error
}
