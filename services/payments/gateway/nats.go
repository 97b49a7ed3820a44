package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paychain/paychain/internal/pkg/constants"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/pkg/nats"
)

// PaymentGW publishes payment lifecycle events to NATS for internal
// consumers (analytics, reconciliation)
type PaymentGW struct {
	natsClient *nats.Client
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(natsClient *nats.Client) *PaymentGW {
	return &PaymentGW{natsClient: natsClient}
}

// PublishChargeEvent publishes a terminal charge outcome
func (g *PaymentGW) PublishChargeEvent(_ context.Context, event *models.ChargeEvent) error {
	subject := constants.SubjectChargeFailed
	if event.Status == models.TransactionStatusSuccess {
		subject = constants.SubjectChargeSuccess
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal charge event: %w", err)
	}

	return g.natsClient.Publish(subject, data)
}
