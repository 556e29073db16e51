package token

import (
	"testing"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	manager := NewJWTManager("test-secret", 1, 7)

	tokenString, err := manager.GenerateToken("admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := manager.VerifyToken(tokenString)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "ADMIN" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", 1, 7)
	other := NewJWTManager("other-secret", 1, 7)

	tokenString, err := manager.GenerateToken("admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := other.VerifyToken(tokenString); err == nil {
		t.Fatal("a token signed with another secret must not verify")
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret", 1, 7)
	if _, err := manager.VerifyToken("not-a-token"); err == nil {
		t.Fatal("garbage input must not verify")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", 1, 7)

	refresh, err := manager.GenerateRefreshToken("admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}
	claims, err := manager.VerifyToken(refresh)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("unexpected claims %+v", claims)
	}
}
