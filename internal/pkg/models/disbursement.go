package models

import (
	"time"
)

// Disbursement statuses
const (
	DisbursementStatusQueued    = "QUEUED"
	DisbursementStatusCompleted = "COMPLETED"
	DisbursementStatusFailed    = "FAILED"
)

// Disbursement represents one payout leg of a disburse call
type Disbursement struct {
	ID             string     `json:"id" db:"id"`
	HoldID         string     `json:"hold_id" db:"hold_id"`
	AccountID      string     `json:"account_id" db:"account_id"`
	Amount         int64      `json:"amount" db:"amount"`
	Currency       string     `json:"currency" db:"currency"`
	RecipientPhone string     `json:"recipient_phone" db:"recipient_phone"`
	RecipientName  *string    `json:"recipient_name,omitempty" db:"recipient_name"`
	PaymentMethod  string     `json:"payment_method" db:"payment_method"`
	Status         string     `json:"status" db:"status"`
	ProviderRef    *string    `json:"provider_ref,omitempty" db:"provider_ref"`
	FailureReason  *string    `json:"failure_reason,omitempty" db:"failure_reason"`
	Metadata       Metadata   `json:"metadata" db:"metadata"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	FailedAt       *time.Time `json:"failed_at,omitempty" db:"failed_at"`
}

// Split is one percentage-based allocation in a disburse call
type Split struct {
	Phone      string  `json:"phone"`
	Percentage float64 `json:"percentage"`
	Name       string  `json:"name"`
}

// DisburseRequest represents an inbound disburse call
type DisburseRequest struct {
	HoldID string  `json:"hold_id"`
	Splits []Split `json:"splits"`
}

// SplitResult is the per-recipient outcome included in the disburse
// response and webhook. Phone numbers are masked.
type SplitResult struct {
	DisbursementID string  `json:"disbursement_id"`
	Phone          string  `json:"phone"`
	Name           string  `json:"name,omitempty"`
	Amount         int64   `json:"amount"`
	Percentage     float64 `json:"percentage"`
	Status         string  `json:"status"`
}

// DisburseResponse is the synchronous response to a disburse call
type DisburseResponse struct {
	HoldID      string        `json:"hold_id"`
	Status      string        `json:"status"`
	TotalAmount int64         `json:"total_amount"`
	Currency    string        `json:"currency"`
	Splits      []SplitResult `json:"splits"`
	Mode        Mode          `json:"mode"`
}
