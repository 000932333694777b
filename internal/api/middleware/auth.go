package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/foodorder/food-ordering-api/internal/api/handler"
	"github.com/foodorder/food-ordering-api/internal/core/domain"
)

// TokenVerifier is the subset of the token manager the middleware needs.
type TokenVerifier interface {
	Verify(token string, kind domain.TokenKind) (domain.TokenPayload, error)
}

// Auth requires a bearer access token and injects its subject and role into
// the echo context. Refresh tokens are rejected.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			scheme, raw, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			payload, err := tokens.Verify(raw, domain.TokenAccess)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(handler.CtxUserID, payload.Subject)
			c.Set(handler.CtxRole, payload.Role)

			return next(c)
		}
	}
}
