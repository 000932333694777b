package ports

import (
	"context"

	"github.com/foodorder/food-ordering-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Username and Role
// are optional and default to the email and domain.RoleCustomer.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

// AuthResult is returned by Register and Login. User never carries a password hash.
type AuthResult struct {
	User   *domain.User
	Tokens domain.TokenPair
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// LoginLimiter throttles repeated failed logins per email.
type LoginLimiter interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
