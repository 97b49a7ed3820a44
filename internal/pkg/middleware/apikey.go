package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
)

const (
	// APIKeyHeader is the primary API key header; a bearer token is
	// accepted as an alternative
	APIKeyHeader = "X-API-Key"

	contextKeyAccount = "account"
	contextKeyMode    = "mode"
)

// KeyResolver resolves an API key to its owning account and operating mode
type KeyResolver interface {
	Resolve(ctx context.Context, key string) (*models.Account, models.Mode, error)
}

// APIKeyAuth validates the caller's API key and stores the resolved
// account and mode on the request context
func APIKeyAuth(resolver KeyResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(APIKeyHeader)
			if key == "" {
				auth := c.Request().Header.Get(echo.HeaderAuthorization)
				key = strings.TrimPrefix(auth, "Bearer ")
			}

			account, mode, err := resolver.Resolve(c.Request().Context(), key)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			c.Set(contextKeyAccount, account)
			c.Set(contextKeyMode, mode)

			return next(c)
		}
	}
}

// AccountFromContext returns the account resolved by APIKeyAuth, or nil
func AccountFromContext(c echo.Context) *models.Account {
	if account, ok := c.Get(contextKeyAccount).(*models.Account); ok {
		return account
	}
	return nil
}

// ModeFromContext returns the operating mode resolved by APIKeyAuth
func ModeFromContext(c echo.Context) models.Mode {
	if mode, ok := c.Get(contextKeyMode).(models.Mode); ok {
		return mode
	}
	return models.ModeSandbox
}
