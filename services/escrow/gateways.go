package escrow

import (
	"context"

	"github.com/paychain/paychain/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/paychain/paychain/services/escrow EscrowGW,PayoutSimulator

// EscrowGW publishes escrow lifecycle events to the message broker
type EscrowGW interface {
	PublishHoldEvent(ctx context.Context, event *models.HoldEvent) error
	PublishDisburseEvent(ctx context.Context, event *models.DisburseEvent) error
}

// PayoutSimulator resolves sandbox payout legs without a real B2C
// gateway. The outcome callback fires on a background goroutine after the
// configured delay, carrying a simulated provider reference on success.
type PayoutSimulator interface {
	SchedulePayoutOutcome(outcome func(success bool, providerRef string))
}
