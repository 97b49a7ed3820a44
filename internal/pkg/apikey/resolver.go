package apikey

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/paychain/paychain/internal/pkg/constants"
	"github.com/paychain/paychain/internal/pkg/database"
	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
)

// API key prefixes select the operating mode
const (
	SandboxKeyPrefix = "sk_test_"
	LiveKeyPrefix    = "sk_live_"
)

// Resolver validates API keys and resolves them to their owning account.
// Lookups are cached in Redis keyed by a digest of the key, never the key
// itself.
type Resolver struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewResolver creates a new API key resolver
func NewResolver(db *sqlx.DB, redisClient *database.RedisClient) *Resolver {
	return &Resolver{
		db:          db,
		redisClient: redisClient,
	}
}

// Resolve validates the presented key and returns the owning account and
// the operating mode encoded in the key prefix
func (r *Resolver) Resolve(ctx context.Context, key string) (*models.Account, models.Mode, error) {
	if key == "" {
		return nil, "", models.ErrUnauthorized
	}

	var mode models.Mode
	switch {
	case strings.HasPrefix(key, SandboxKeyPrefix):
		mode = models.ModeSandbox
	case strings.HasPrefix(key, LiveKeyPrefix):
		mode = models.ModeLive
	default:
		return nil, "", models.ErrUnauthorized
	}

	cacheKey := constants.APIKeyCachePrefix + digest(key)
	if cached, err := r.redisClient.Get(ctx, cacheKey); err == nil {
		var account models.Account
		if err := json.Unmarshal([]byte(cached), &account); err == nil {
			return &account, mode, nil
		}
	}

	account, err := r.lookupAccount(ctx, key, mode)
	if err != nil {
		return nil, "", err
	}

	if data, err := json.Marshal(account); err == nil {
		if err := r.redisClient.Set(ctx, cacheKey, data, constants.APIKeyCacheTTL); err != nil {
			logger.Warn("Failed to cache API key lookup", logger.Err(err))
		}
	}

	return account, mode, nil
}

func (r *Resolver) lookupAccount(ctx context.Context, key string, mode models.Mode) (*models.Account, error) {
	var account models.Account
	var err error

	if mode == models.ModeSandbox {
		// Sandbox keys are stored in plaintext for dev convenience
		query := `
			SELECT id, business_name, status, sandbox_api_key, api_key_last_four, created_at, updated_at
			FROM accounts
			WHERE sandbox_api_key = $1
		`
		err = r.db.GetContext(ctx, &account, query, key)
	} else {
		// Live keys are matched by their stored last-four digits and
		// require an approved account
		query := `
			SELECT id, business_name, status, sandbox_api_key, api_key_last_four, created_at, updated_at
			FROM accounts
			WHERE api_key_last_four = $1 AND status = $2
			ORDER BY created_at
			LIMIT 1
		`
		err = r.db.GetContext(ctx, &account, query, lastFour(key), models.AccountStatusApproved)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	return &account, nil
}

func digest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func lastFour(key string) string {
	if len(key) < 4 {
		return key
	}
	return key[len(key)-4:]
}
