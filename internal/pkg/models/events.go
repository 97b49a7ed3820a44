package models

import (
	"time"
)

// ChargeEvent is published to NATS when a transaction reaches a terminal
// collection status
type ChargeEvent struct {
	TransactionID string    `json:"transaction_id"`
	AccountID     string    `json:"account_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Phone         string    `json:"phone"`
	Status        string    `json:"status"`
	ProviderRef   string    `json:"provider_ref,omitempty"`
	Mode          Mode      `json:"mode"`
	Timestamp     time.Time `json:"timestamp"`
}

// HoldEvent is published to NATS on hold creation and release
type HoldEvent struct {
	HoldID        string    `json:"hold_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	AccountID     string    `json:"account_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Mode          Mode      `json:"mode"`
	Timestamp     time.Time `json:"timestamp"`
}

// DisburseEvent is published to NATS when a disburse call fans out
type DisburseEvent struct {
	HoldID      string        `json:"hold_id"`
	AccountID   string        `json:"account_id"`
	TotalAmount int64         `json:"total_amount"`
	Currency    string        `json:"currency"`
	Splits      []SplitResult `json:"splits"`
	Mode        Mode          `json:"mode"`
	Timestamp   time.Time     `json:"timestamp"`
}
