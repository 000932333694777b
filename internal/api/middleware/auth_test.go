package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodorder/food-ordering-api/internal/api/handler"
	"github.com/foodorder/food-ordering-api/internal/core/domain"
	"github.com/foodorder/food-ordering-api/internal/infrastructure/token"
)

func newManager(t *testing.T) *token.Manager {
	t.Helper()
	m, err := token.NewManager(token.Config{Secret: "secret", AccessTTL: time.Minute})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return m
}

func serve(t *testing.T, tokens TokenVerifier, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth(tokens)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func unreachable(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := newManager(t)
	signed, err := m.Sign(domain.TokenPayload{Subject: "u1", Role: domain.RoleAdmin}, domain.TokenAccess)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	called := false
	rec := serve(t, m, "Bearer "+signed, func(c echo.Context) error {
		called = true
		if c.Get(handler.CtxUserID) != "u1" {
			t.Fatalf("user id not set")
		}
		if c.Get(handler.CtxRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	m := newManager(t)
	refresh, err := m.Sign(domain.TokenPayload{Subject: "u1", Role: domain.RoleCustomer}, domain.TokenRefresh)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Token abc"},
		{name: "empty bearer", header: "Bearer "},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "refresh token", header: "Bearer " + refresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, m, tt.header, unreachable(t))
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
