package middleware

import (
	"github.com/nolann7/bank/internal/errors"
	"github.com/nolann7/bank/internal/handlers"
	"github.com/nolann7/bank/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionTokenHeader carries the opaque token issued at login
	SessionTokenHeader = "X-Session-Token"
	// AccountContextKey is the context key for the authenticated account
	AccountContextKey = "account"
)

// RequireSession resolves the session token to the active account and stores
// it in the request context. A missing, stale or expired token is rejected
// before the handler runs.
func RequireSession(sessions services.SessionServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(SessionTokenHeader)
			if token == "" {
				return handlers.SendError(c, errors.SessionMissing)
			}

			account, err := sessions.Authorize(token)
			if err != nil {
				return handlers.SendError(c, errors.SessionExpired)
			}

			c.Set(AccountContextKey, account)
			return next(c)
		}
	}
}
