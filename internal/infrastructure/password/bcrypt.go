// Package password provides the production ports.PasswordHasher.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/foodorder/food-ordering-api/internal/core/domain"
)

const DefaultCost = 10

// MaxPasswordBytes is the longest input bcrypt accepts. The limit is in bytes,
// so multi-byte characters count more than once.
const MaxPasswordBytes = 72

// Bcrypt hashes passwords with a fixed bcrypt work factor.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher using cost, or DefaultCost when cost is outside
// the range bcrypt accepts.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", domain.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (b *Bcrypt) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword),
		errors.Is(err, bcrypt.ErrPasswordTooLong):
		// No stored hash can come from an over-long password.
		return domain.ErrInvalidCredentials
	default:
		return fmt.Errorf("compare password: %w", err)
	}
}
