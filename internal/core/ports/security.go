package ports

import "github.com/foodorder/food-ordering-api/internal/core/domain"

// PasswordHasher hashes and checks passwords with a salted one-way function.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare returns domain.ErrInvalidCredentials when plain does not match hash.
	Compare(hash, plain string) error
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Sign(payload domain.TokenPayload, kind domain.TokenKind) (string, error)
	Verify(token string, kind domain.TokenKind) (domain.TokenPayload, error)
	IssuePair(payload domain.TokenPayload) (domain.TokenPair, error)
}
