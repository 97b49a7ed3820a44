package models

import (
	"time"
)

// Mode selects sandbox or live gateway behavior for a request,
// derived from the caller's API key prefix.
type Mode string

const (
	ModeSandbox Mode = "sandbox"
	ModeLive    Mode = "live"
)

// Account statuses
const (
	AccountStatusPending  = "PENDING"
	AccountStatusApproved = "APPROVED"
	AccountStatusRejected = "REJECTED"
)

// Account represents a merchant account that owns transactions,
// holds, disbursements and webhook endpoints
type Account struct {
	ID             string    `json:"id" db:"id"`
	BusinessName   string    `json:"business_name" db:"business_name"`
	Status         string    `json:"status" db:"status"`
	SandboxAPIKey  string    `json:"-" db:"sandbox_api_key"`
	APIKeyLastFour string    `json:"-" db:"api_key_last_four"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
