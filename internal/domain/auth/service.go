package auth

import "context"

// AuthService handles the admin login flow. Employee attendance login is a
// state-machine operation and lives in the attendance service.
type AuthService interface {
	AdminLogin(ctx context.Context, req AdminLoginRequest) (AdminLoginResponse, error)
}
