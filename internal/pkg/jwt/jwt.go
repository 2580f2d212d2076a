package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/shiftbook/attendance-backend-go/internal/domain/user"
)

type Service interface {
	// GenerateEmployeeToken issues the token returned at attendance login.
	// Its expiry tracks the shift window rather than a fixed duration.
	GenerateEmployeeToken(employeeID string, name string, designation string, expiresAt time.Time) (token string, err error)

	// GenerateAdminToken issues the token returned at admin login.
	GenerateAdminToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error)

	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey           string
	adminExpirationTime string
	tokenAuth           *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, adminExpirationTime string) Service {
	return &JWTService{
		secretKey:           secretKey,
		adminExpirationTime: adminExpirationTime,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateEmployeeToken(employeeID string, name string, designation string, expiresAt time.Time) (string, error) {
	claims := map[string]interface{}{
		"employee_id": employeeID,
		"name":        name,
		"designation": designation,
		"role":        "employee",
		"type":        "access",
		"exp":         expiresAt.Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (j *JWTService) GenerateAdminToken(userID string, email string, role user.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.adminExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt, nil
}
