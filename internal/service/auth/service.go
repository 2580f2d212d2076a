package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftbook/attendance-backend-go/internal/domain/auth"
	"github.com/shiftbook/attendance-backend-go/internal/domain/user"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

// AdminLogin implements auth.AuthService.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.AdminLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AdminLoginResponse{}, err
	}

	account, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AdminLoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AdminLoginResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AdminLoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAdminToken(account.ID, account.Email, account.Role)
	if err != nil {
		return auth.AdminLoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.AdminLoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Email:       account.Email,
		Role:        string(account.Role),
	}, nil
}
