package webhooks

import (
	"context"

	"github.com/paychain/paychain/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_dispatcher.go -package=mocks github.com/paychain/paychain/services/webhooks Dispatcher

// Dispatcher signs and delivers lifecycle events to an account's
// configured listener endpoints, recording each delivery attempt.
// Delivery is single-attempt and best-effort; per-endpoint failures are
// recorded on the delivery row, not returned.
type Dispatcher interface {
	Dispatch(ctx context.Context, accountID, eventType string, data map[string]interface{}) error
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/paychain/paychain/services/webhooks Repository

// Repository provides access to webhook endpoints and delivery records
type Repository interface {
	ListActiveEndpoints(ctx context.Context, accountID string) ([]models.WebhookEndpoint, error)
	CreateDelivery(ctx context.Context, delivery *models.WebhookDelivery) error
	MarkDelivered(ctx context.Context, deliveryID string, responseStatus int, responseBody string) error
	MarkFailed(ctx context.Context, deliveryID string, responseStatus int, responseBody string) error
}
