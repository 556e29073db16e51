package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"culturebridge/pkg/token"

	"github.com/gin-gonic/gin"
)

func setupProtectedRouter(jwtManager *token.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", AuthMiddleware(jwtManager), AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := setupProtectedRouter(token.NewJWTManager("secret", 1, 7))
	if resp := doGet(r, ""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r := setupProtectedRouter(token.NewJWTManager("secret", 1, 7))
	if resp := doGet(r, "Token abc"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := setupProtectedRouter(token.NewJWTManager("secret", 1, 7))
	if resp := doGet(r, "Bearer garbage"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAdminAuthMiddlewareRejectsNonAdmin(t *testing.T) {
	jwtManager := token.NewJWTManager("secret", 1, 7)
	r := setupProtectedRouter(jwtManager)

	userToken, err := jwtManager.GenerateToken("someone", "USER")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if resp := doGet(r, "Bearer "+userToken); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestAdminAuthMiddlewareAllowsAdmin(t *testing.T) {
	jwtManager := token.NewJWTManager("secret", 1, 7)
	r := setupProtectedRouter(jwtManager)

	adminToken, err := jwtManager.GenerateToken("admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if resp := doGet(r, "Bearer "+adminToken); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
