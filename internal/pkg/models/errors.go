package models

import (
	"errors"
)

// Domain errors surfaced by the lifecycle operations. Handlers map these to
// HTTP statuses; repositories and gateways wrap lower-level failures around
// them with %w.
var (
	// ErrInvalidAmount indicates an amount below the 100 minor-unit minimum
	ErrInvalidAmount = errors.New("amount must be at least 100 cents (KSh 1)")

	// ErrInvalidPhone indicates a phone number that cannot be normalized
	ErrInvalidPhone = errors.New("invalid phone number format")

	// ErrUnsupportedPhone indicates a number outside the supported networks
	ErrUnsupportedPhone = errors.New("unsupported phone number, use Safaricom or Airtel numbers")

	// ErrInvalidSplit indicates a malformed or non-100% split list
	ErrInvalidSplit = errors.New("invalid split configuration")

	// ErrNotFound indicates the referenced entity is absent or not owned by
	// the calling account
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidState indicates the operation is illegal in the entity's
	// current lifecycle state
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrConflict indicates a duplicate active hold on a transaction
	ErrConflict = errors.New("transaction already has an active hold")

	// ErrGatewayFailure indicates the upstream mobile-money call failed
	ErrGatewayFailure = errors.New("payment gateway request failed")

	// ErrUnauthorized indicates a missing or invalid API key
	ErrUnauthorized = errors.New("invalid API key")
)
