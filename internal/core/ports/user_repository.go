package ports

import (
	"context"

	"github.com/foodorder/food-ordering-api/internal/core/domain"
)

// UserRepository defines the persistence operations the auth flows need.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create stores the user and returns it with its generated ID. Unique
	// violations are reported as domain.ErrEmailInUse or domain.ErrUsernameTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
