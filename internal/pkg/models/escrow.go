package models

import (
	"time"
)

// Escrow hold statuses. Disbursed is terminal.
const (
	HoldStatusHeld      = "HELD"
	HoldStatusReleased  = "RELEASED"
	HoldStatusDisbursed = "DISBURSED"
	HoldStatusCancelled = "CANCELLED"
	HoldStatusExpired   = "EXPIRED"
)

// EscrowHold represents collected funds locked pending a release condition
type EscrowHold struct {
	ID            string     `json:"id" db:"id"`
	AccountID     string     `json:"account_id" db:"account_id"`
	TransactionID *string    `json:"transaction_id,omitempty" db:"transaction_id"`
	Amount        int64      `json:"amount" db:"amount"`
	Currency      string     `json:"currency" db:"currency"`
	Phone         string     `json:"phone" db:"phone"`
	PaymentMethod string     `json:"payment_method" db:"payment_method"`
	Status        string     `json:"status" db:"status"`
	Description   *string    `json:"description,omitempty" db:"description"`
	ReleaseMethod string     `json:"release_method" db:"release_method"`
	ExpiresAt     time.Time  `json:"expires_at" db:"expires_at"`
	ReleasedAt    *time.Time `json:"released_at,omitempty" db:"released_at"`
	Metadata      Metadata   `json:"metadata" db:"metadata"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// HoldRequest represents an inbound hold call
type HoldRequest struct {
	TransactionID string `json:"transaction_id"`
	Condition     string `json:"condition"`
	ExpiryHours   int    `json:"expiry_hours"`
	Description   string `json:"description"`
}

// HoldResponse is the synchronous response to a hold call
type HoldResponse struct {
	HoldID    string    `json:"hold_id"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Mode      Mode      `json:"mode"`
}

// ReleaseResponse is the synchronous response to a release call
type ReleaseResponse struct {
	HoldID     string    `json:"hold_id"`
	Status     string    `json:"status"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	ReleasedAt time.Time `json:"released_at"`
	Mode       Mode      `json:"mode"`
}
