package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodorder/food-ordering-api/internal/core/domain"
	"github.com/foodorder/food-ordering-api/internal/core/ports"
)

// AuthService implements registration, login and token refresh.
type AuthService struct {
	repo    ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	limiter ports.LoginLimiter
	logger  zerolog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// decoyPassword is hashed once and compared against when the email is
// unknown, so both login failures pay for one hash comparison.
const decoyPassword = "decoy-password-never-assigned"

// NewAuthService wires the auth flows. limiter may be nil to disable login
// throttling.
func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	limiter ports.LoginLimiter,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	// 1. Best-effort pre-check; the unique index on email is authoritative.
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrEmailInUse
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: %w", err)
	}

	username := in.Username
	if username == "" {
		username = in.Email
	}
	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	// 2. Hash; the plaintext goes no further than this call.
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrPasswordTooLong) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        in.Email,
		Username:     username,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) || errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("register: %w", err)
	}

	// 3. Token pair for the new account.
	tokens, err := s.tokens.IssuePair(domain.TokenPayload{Subject: created.ID, Role: created.Role})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	return &ports.AuthResult{User: created.WithoutPassword(), Tokens: tokens}, nil
}

// Login never tells a caller whether the email exists: an unknown email and a
// wrong password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if s.blocked(ctx, email) {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.compareDecoy(password)
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	tokens, err := s.tokens.IssuePair(domain.TokenPayload{Subject: user.ID, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login attempts")
		}
	}

	s.logger.Debug().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{User: user.WithoutPassword(), Tokens: tokens}, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is not rotated.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (string, error) {
	payload, err := s.tokens.Verify(refreshToken, domain.TokenRefresh)
	if err != nil {
		s.logger.Debug().Err(err).Msg("refresh token rejected")
		return "", domain.ErrInvalidRefreshToken
	}

	access, err := s.tokens.Sign(payload, domain.TokenAccess)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	return access, nil
}

func (s *AuthService) compareDecoy(password string) {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(decoyPassword)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to prepare decoy hash")
			return
		}
		s.decoyHash = hash
	})
	if s.decoyHash != "" {
		_ = s.hasher.Compare(s.decoyHash, password)
	}
}

// blocked fails open: a limiter outage must not lock everyone out.
func (s *AuthService) blocked(ctx context.Context, email string) bool {
	if s.limiter == nil {
		return false
	}
	blocked, err := s.limiter.Blocked(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login limiter check failed, allowing attempt")
		return false
	}
	return blocked
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}
