package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paychain/paychain/internal/pkg/constants"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/pkg/nats"
)

// EscrowGW publishes escrow lifecycle events to NATS for internal
// consumers
type EscrowGW struct {
	natsClient *nats.Client
}

// NewEscrowGW creates a new escrow gateway
func NewEscrowGW(natsClient *nats.Client) *EscrowGW {
	return &EscrowGW{natsClient: natsClient}
}

// PublishHoldEvent publishes a hold creation or release
func (g *EscrowGW) PublishHoldEvent(_ context.Context, event *models.HoldEvent) error {
	subject := constants.SubjectHoldCreated
	if event.Status == models.HoldStatusReleased {
		subject = constants.SubjectHoldReleased
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hold event: %w", err)
	}

	return g.natsClient.Publish(subject, data)
}

// PublishDisburseEvent publishes a disbursement fan-out
func (g *EscrowGW) PublishDisburseEvent(_ context.Context, event *models.DisburseEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal disburse event: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectDisburseSuccess, data)
}
