package domain

// TokenKind distinguishes access tokens from refresh tokens. It is embedded in
// every token as the "typ" claim and checked on verification.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// TokenPayload is the identity carried inside a signed token.
type TokenPayload struct {
	Subject string
	Role    Role
}

// TokenPair is what registration and login hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
