package service

import (
	"errors"

	"culturebridge/internal/config"
	"culturebridge/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure; the cause is
// not distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService authenticates the administrative account.
type AuthService interface {
	Login(username, password string) (accessToken, refreshToken string, err error)
	RefreshToken(refreshTokenString string) (newAccessToken, newRefreshToken string, err error)
}

type authService struct {
	admin      config.AdminConfig
	jwtManager *token.JWTManager
}

// NewAuthService creates an AuthService for the configured admin account.
func NewAuthService(admin config.AdminConfig, jwtManager *token.JWTManager) AuthService {
	return &authService{admin: admin, jwtManager: jwtManager}
}

// Login checks the credentials against the configured bcrypt hash and
// issues a token pair.
func (s *authService) Login(username, password string) (string, string, error) {
	if username != s.admin.Username {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateToken(username, "ADMIN")
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(username, "ADMIN")
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
func (s *authService) RefreshToken(refreshTokenString string) (string, string, error) {
	claims, err := s.jwtManager.VerifyToken(refreshTokenString)
	if err != nil {
		return "", "", errors.New("invalid or expired refresh token")
	}

	newAccessToken, err := s.jwtManager.GenerateToken(claims.Username, claims.Role)
	if err != nil {
		return "", "", err
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(claims.Username, claims.Role)
	if err != nil {
		return "", "", err
	}
	return newAccessToken, newRefreshToken, nil
}
