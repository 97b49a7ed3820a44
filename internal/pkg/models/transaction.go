package models

import (
	"time"
)

// Transaction statuses
const (
	TransactionStatusPending  = "PENDING"
	TransactionStatusSuccess  = "SUCCESS"
	TransactionStatusFailed   = "FAILED"
	TransactionStatusHeld     = "HELD"
	TransactionStatusReleased = "RELEASED"
)

// Payment providers detected from the payer's phone prefix
const (
	ProviderMpesa  = "MPESA"
	ProviderAirtel = "AIRTEL"
)

// Transaction represents one funds-collection attempt. Amounts are in
// minor currency units (cents).
type Transaction struct {
	ID            string     `json:"id" db:"id"`
	AccountID     string     `json:"account_id" db:"account_id"`
	Amount        int64      `json:"amount" db:"amount"`
	Currency      string     `json:"currency" db:"currency"`
	Phone         string     `json:"phone" db:"phone"`
	PaymentMethod string     `json:"payment_method" db:"payment_method"`
	Description   *string    `json:"description,omitempty" db:"description"`
	Status        string     `json:"status" db:"status"`
	FeeAmount     int64      `json:"fee_amount" db:"fee_amount"`
	FeePercentage float64    `json:"fee_percentage" db:"fee_percentage"`
	ExternalRef   *string    `json:"external_ref,omitempty" db:"external_ref"`
	RedirectURL   *string    `json:"redirect_url,omitempty" db:"redirect_url"`
	CancelURL     *string    `json:"cancel_url,omitempty" db:"cancel_url"`
	MerchantName  string     `json:"merchant_name" db:"merchant_name"`
	CheckoutURL   string     `json:"checkout_url" db:"checkout_url"`
	ProviderRef   *string    `json:"provider_ref,omitempty" db:"provider_ref"`
	Metadata      Metadata   `json:"metadata" db:"metadata"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// ChargeRequest represents an inbound charge call
type ChargeRequest struct {
	Amount       int64  `json:"amount"`
	Phone        string `json:"phone"`
	Currency     string `json:"currency"`
	Description  string `json:"description"`
	ExternalRef  string `json:"external_ref"`
	RedirectURL  string `json:"redirect_url"`
	CancelURL    string `json:"cancel_url"`
	MerchantName string `json:"merchant_name"`

	// ClientIP is stamped by the handler, never bound from the body
	ClientIP string `json:"-"`
}

// ChargeResponse is the synchronous response to a charge call. The final
// payment outcome arrives later via webhook or polling, never here.
type ChargeResponse struct {
	TransactionID     string `json:"transaction_id"`
	CheckoutURL       string `json:"checkout_url"`
	Status            string `json:"status"`
	Message           string `json:"message"`
	Mode              Mode   `json:"mode"`
	Amount            int64  `json:"amount"`
	Currency          string `json:"currency"`
	Fee               int64  `json:"fee"`
	NetAmount         int64  `json:"net_amount"`
	PaymentMethod     string `json:"payment_method"`
	CheckoutRequestID string `json:"checkout_request_id,omitempty"`
}
