package domain

import "errors"

// Conflicts on unique user fields.
var (
	ErrEmailInUse    = errors.New("email already in use")
	ErrUsernameTaken = errors.New("username already taken")
)

// Authentication failures. Messages are safe to show to clients.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("refresh token expired or invalid")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTooManyAttempts     = errors.New("too many login attempts")
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")

// ErrPasswordTooLong is returned for passwords beyond the hasher's input limit.
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
