package payments

import (
	"context"

	"github.com/paychain/paychain/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/paychain/paychain/services/payments StkGateway,PaymentGW,ChargeSimulator

// StkGateway abstracts the mobile-money STK push provider
type StkGateway interface {
	// InitiatePush starts an STK push on the payer's handset
	InitiatePush(ctx context.Context, req *models.STKPushRequest) (*models.STKPushResponse, error)

	// QueryPush checks the status of a previously initiated push
	QueryPush(ctx context.Context, checkoutRequestID string) (*models.STKQueryResponse, error)
}

// PaymentGW publishes payment lifecycle events to the message broker
type PaymentGW interface {
	PublishChargeEvent(ctx context.Context, event *models.ChargeEvent) error
}

// ChargeSimulator resolves sandbox charges without a real gateway. The
// outcome callback fires on a background goroutine after the configured
// delay.
type ChargeSimulator interface {
	ScheduleChargeOutcome(outcome func(success bool))
}
