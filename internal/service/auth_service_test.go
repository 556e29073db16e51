package service

import (
	"errors"
	"testing"

	"culturebridge/internal/config"
	"culturebridge/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return NewAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}, token.NewJWTManager("test-secret", 1, 7))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	access, refresh, err := svc.Login("admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Error("expected both tokens")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Login("admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginWrongUsername(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Login("root", "correct-horse")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshTokenExchange(t *testing.T) {
	svc := newTestAuthService(t)

	_, refresh, err := svc.Login("admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	newAccess, newRefresh, err := svc.RefreshToken(refresh)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Error("expected a fresh token pair")
	}

	if _, _, err := svc.RefreshToken("garbage"); err == nil {
		t.Error("garbage refresh token must fail")
	}
}
