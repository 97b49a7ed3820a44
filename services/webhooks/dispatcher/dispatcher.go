package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/services/webhooks"
)

// Webhook headers carried on every delivery
const (
	SignatureHeader = "X-PayChain-Signature"
	EventHeader     = "X-PayChain-Event"
)

// HTTPDispatcher delivers signed webhook events over HTTP. Each event gets
// exactly one POST per subscribed endpoint; there is no retry and no
// ordering guarantee across endpoints.
type HTTPDispatcher struct {
	repo    webhooks.Repository
	client  *http.Client
	maxBody int

	// now is swappable for deterministic signatures in tests
	now func() time.Time
}

// NewHTTPDispatcher creates a dispatcher with the configured delivery
// timeout and response-body cap
func NewHTTPDispatcher(cfg models.WebhookConfig, repo webhooks.Repository) *HTTPDispatcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxBody := cfg.MaxResponseBody
	if maxBody <= 0 {
		maxBody = 1000
	}

	return &HTTPDispatcher{
		repo:    repo,
		client:  &http.Client{Timeout: timeout},
		maxBody: maxBody,
		now:     time.Now,
	}
}

// Dispatch delivers the event to every active endpoint of the account
// subscribed to the event type. Listing failures are returned; delivery
// failures are recorded on the delivery row and logged only.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, accountID, eventType string, data map[string]interface{}) error {
	endpoints, err := d.repo.ListActiveEndpoints(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to list webhook endpoints: %w", err)
	}
	if len(endpoints) == 0 {
		logger.Debug("No webhook endpoints for account", logger.String("account_id", accountID))
		return nil
	}

	timestamp := strconv.FormatInt(d.now().Unix(), 10)

	for _, endpoint := range endpoints {
		if !endpoint.Events.Contains(eventType) {
			continue
		}

		payload := models.WebhookPayload{
			Event:     eventType,
			Data:      data,
			Timestamp: timestamp,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			logger.Error("Failed to marshal webhook payload",
				logger.String("event_type", eventType),
				logger.Err(err))
			continue
		}

		delivery := &models.WebhookDelivery{
			ID:                uuid.New().String(),
			WebhookEndpointID: endpoint.ID,
			EventType:         eventType,
			Payload:           models.Metadata{"event": eventType, "data": data, "timestamp": timestamp},
			Status:            models.DeliveryStatusPending,
		}
		if err := d.repo.CreateDelivery(ctx, delivery); err != nil {
			logger.Error("Failed to record webhook delivery",
				logger.String("endpoint_id", endpoint.ID),
				logger.Err(err))
			continue
		}

		d.deliver(ctx, endpoint, delivery, body, timestamp)
	}

	return nil
}

// deliver performs the single delivery attempt and records its outcome
func (d *HTTPDispatcher) deliver(ctx context.Context, endpoint models.WebhookEndpoint, delivery *models.WebhookDelivery, body []byte, timestamp string) {
	signature := Sign(endpoint.Secret, timestamp, body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		d.recordFailure(ctx, delivery.ID, 0, err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, fmt.Sprintf("t=%s,v1=%s", timestamp, signature))
	req.Header.Set(EventHeader, delivery.EventType)

	resp, err := d.client.Do(req)
	if err != nil {
		logger.Warn("Webhook delivery failed",
			logger.String("endpoint_id", endpoint.ID),
			logger.String("url", endpoint.URL),
			logger.Err(err))
		d.recordFailure(ctx, delivery.ID, 0, err.Error())
		return
	}
	defer resp.Body.Close()

	responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, int64(d.maxBody)+1))
	truncated := string(responseBody)
	if len(truncated) > d.maxBody {
		truncated = truncated[:d.maxBody]
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := d.repo.MarkDelivered(ctx, delivery.ID, resp.StatusCode, truncated); err != nil {
			logger.Error("Failed to mark webhook delivered", logger.Err(err))
		}
		return
	}

	logger.Warn("Webhook endpoint returned non-2xx",
		logger.String("endpoint_id", endpoint.ID),
		logger.Int("status", resp.StatusCode))
	d.recordFailure(ctx, delivery.ID, resp.StatusCode, truncated)
}

func (d *HTTPDispatcher) recordFailure(ctx context.Context, deliveryID string, status int, body string) {
	if len(body) > d.maxBody {
		body = body[:d.maxBody]
	}
	if err := d.repo.MarkFailed(ctx, deliveryID, status, body); err != nil {
		logger.Error("Failed to mark webhook failed", logger.Err(err))
	}
}
