package auth

import "errors"

var (
	ErrInvalidSecretKey   = errors.New("invalid secret key")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
