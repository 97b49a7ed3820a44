package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paychain/paychain/internal/pkg/database"
	"github.com/paychain/paychain/internal/pkg/models"
)

// WebhookRepo persists webhook endpoint and delivery records in Postgres
type WebhookRepo struct {
	db *sqlx.DB
}

// NewWebhookRepo creates a new webhook repository
func NewWebhookRepo(client *database.PostgresClient) *WebhookRepo {
	return &WebhookRepo{db: client.GetDB()}
}

// ListActiveEndpoints returns the account's active webhook endpoints
func (r *WebhookRepo) ListActiveEndpoints(ctx context.Context, accountID string) ([]models.WebhookEndpoint, error) {
	query := `
		SELECT id, account_id, url, secret, events, is_active, created_at
		FROM webhook_endpoints
		WHERE account_id = $1 AND is_active = true
		ORDER BY created_at`

	var endpoints []models.WebhookEndpoint
	if err := r.db.SelectContext(ctx, &endpoints, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to list webhook endpoints: %w", err)
	}

	return endpoints, nil
}

// CreateDelivery inserts a pending delivery record
func (r *WebhookRepo) CreateDelivery(ctx context.Context, delivery *models.WebhookDelivery) error {
	query := `
		INSERT INTO webhook_deliveries (id, webhook_endpoint_id, event_type, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := r.db.ExecContext(ctx, query,
		delivery.ID,
		delivery.WebhookEndpointID,
		delivery.EventType,
		delivery.Payload,
		delivery.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create webhook delivery: %w", err)
	}

	return nil
}

// MarkDelivered records a successful delivery. A responseStatus of 0 means
// no HTTP response was received and is stored as NULL.
func (r *WebhookRepo) MarkDelivered(ctx context.Context, deliveryID string, responseStatus int, responseBody string) error {
	query := `
		UPDATE webhook_deliveries
		SET status = $2, response_status = $3, response_body = $4, delivered_at = NOW()
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		deliveryID,
		models.DeliveryStatusDelivered,
		nullableStatus(responseStatus),
		responseBody,
	)
	if err != nil {
		return fmt.Errorf("failed to mark delivery delivered: %w", err)
	}

	return nil
}

// MarkFailed records a failed delivery attempt
func (r *WebhookRepo) MarkFailed(ctx context.Context, deliveryID string, responseStatus int, responseBody string) error {
	query := `
		UPDATE webhook_deliveries
		SET status = $2, response_status = $3, response_body = $4, failed_at = NOW()
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		deliveryID,
		models.DeliveryStatusFailed,
		nullableStatus(responseStatus),
		responseBody,
	)
	if err != nil {
		return fmt.Errorf("failed to mark delivery failed: %w", err)
	}

	return nil
}

func nullableStatus(status int) interface{} {
	if status == 0 {
		return nil
	}
	return status
}
