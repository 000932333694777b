package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodorder/food-ordering-api/internal/core/domain"
)

// Context keys written by middleware.Auth.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// errorBody documents the JSON error envelope for swagger.
type errorBody struct {
	Error string `json:"error"`
}

// ctxClaims extracts the identity injected by the Auth middleware. A missing
// subject means the route was mounted without the middleware.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get(CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(CtxRole).(domain.Role)
	return userID, role, nil
}
