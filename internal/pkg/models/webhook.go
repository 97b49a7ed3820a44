package models

import (
	"time"
)

// Webhook event types
const (
	EventChargeSuccess   = "charge.success"
	EventChargeFailed    = "charge.failed"
	EventHoldCreated     = "hold.created"
	EventHoldReleased    = "hold.released"
	EventDisburseSuccess = "disburse.success"
)

// Webhook delivery statuses
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
)

// WebhookEndpoint is an account's listener configuration. Endpoints are
// managed outside the lifecycle engine and consumed read-only here.
type WebhookEndpoint struct {
	ID        string     `json:"id" db:"id"`
	AccountID string     `json:"account_id" db:"account_id"`
	URL       string     `json:"url" db:"url"`
	Secret    string     `json:"-" db:"secret"`
	Events    StringList `json:"events" db:"events"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// WebhookDelivery records one delivery attempt of an event to an endpoint
type WebhookDelivery struct {
	ID                string     `json:"id" db:"id"`
	WebhookEndpointID string     `json:"webhook_endpoint_id" db:"webhook_endpoint_id"`
	EventType         string     `json:"event_type" db:"event_type"`
	Payload           Metadata   `json:"payload" db:"payload"`
	Status            string     `json:"status" db:"status"`
	ResponseStatus    *int       `json:"response_status,omitempty" db:"response_status"`
	ResponseBody      *string    `json:"response_body,omitempty" db:"response_body"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty" db:"delivered_at"`
	FailedAt          *time.Time `json:"failed_at,omitempty" db:"failed_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}

// WebhookPayload is the canonical outbound webhook body. Timestamp is the
// unix epoch as a decimal string and is also the signed prefix.
type WebhookPayload struct {
	Event     string                 `json:"event"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}
