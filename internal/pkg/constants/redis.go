package constants

import "time"

// Redis key prefixes and TTLs
const (
	// APIKeyCachePrefix prefixes cached API-key account lookups,
	// keyed by a SHA-256 digest of the presented key
	APIKeyCachePrefix = "apikey:"
	APIKeyCacheTTL    = 5 * time.Minute

	// CallbackDedupPrefix prefixes the at-least-once guard for gateway
	// callbacks, keyed by the gateway's CheckoutRequestID
	CallbackDedupPrefix = "callback:stk:"
	CallbackDedupTTL    = 24 * time.Hour
)
