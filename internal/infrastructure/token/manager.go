// Package token signs and verifies the HS256 bearer tokens handed out by the
// auth flows.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/foodorder/food-ordering-api/internal/core/domain"
)

const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Config is built once at startup and handed to NewManager.
type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Claims is the JWT body: sub, role, typ, iat and exp.
type Claims struct {
	Role domain.Role      `json:"role"`
	Kind domain.TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// Manager implements ports.TokenIssuer.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration

	// Now is the clock used for iat/exp and validation. Overridable in tests.
	Now func() time.Time
}

func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	return &Manager{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		Now:        time.Now,
	}, nil
}

// Sign mints a token of the given kind for payload.
func (m *Manager) Sign(payload domain.TokenPayload, kind domain.TokenKind) (string, error) {
	ttl, err := m.ttl(kind)
	if err != nil {
		return "", err
	}

	now := m.Now()
	claims := Claims{
		Role: payload.Role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Verify checks signature, expiry and kind, and returns the embedded payload.
// Every failure is reported as domain.ErrInvalidToken wrapping the cause.
func (m *Manager) Verify(tokenStr string, kind domain.TokenKind) (domain.TokenPayload, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.Now),
	)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Kind != kind {
		return domain.TokenPayload{}, fmt.Errorf("%w: expected %s token, got %q", domain.ErrInvalidToken, kind, claims.Kind)
	}
	if claims.Subject == "" {
		return domain.TokenPayload{}, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}

	return domain.TokenPayload{Subject: claims.Subject, Role: claims.Role}, nil
}

// IssuePair mints an access and a refresh token for the same payload.
func (m *Manager) IssuePair(payload domain.TokenPayload) (domain.TokenPair, error) {
	access, err := m.Sign(payload, domain.TokenAccess)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := m.Sign(payload, domain.TokenRefresh)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *Manager) ttl(kind domain.TokenKind) (time.Duration, error) {
	switch kind {
	case domain.TokenAccess:
		return m.accessTTL, nil
	case domain.TokenRefresh:
		return m.refreshTTL, nil
	default:
		return 0, fmt.Errorf("token: unknown kind %q", kind)
	}
}
