package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/middleware"
	"github.com/yigit/internlink/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", m.JWTAuth())
	protected.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	protected.GET("/admin", m.RoleRequired("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.Role) string {
	t.Helper()
	user := &models.User{ID: 5, Email: "u@example.com", Role: role}
	token, _, err := jwtService.GenerateToken(user, auth.DisplayClaims{})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", TokenExp: time.Hour})
	router := newTestRouter(svc)

	if w := doRequest(router, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for missing header, got %d", w.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", TokenExp: time.Hour})
	router := newTestRouter(svc)

	if w := doRequest(router, "/me", "Bearer not.a.token"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", TokenExp: -time.Minute})
	router := newTestRouter(expired)
	token := issueToken(t, expired, models.RoleStudent)

	w := doRequest(router, "/me", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", TokenExp: time.Hour})
	router := newTestRouter(svc)
	token := issueToken(t, svc, models.RoleStudent)

	w := doRequest(router, "/me", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for valid token, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRoleRequired(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", TokenExp: time.Hour})
	router := newTestRouter(svc)

	studentToken := issueToken(t, svc, models.RoleStudent)
	if w := doRequest(router, "/admin", "Bearer "+studentToken); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for wrong role, got %d", w.Code)
	}

	adminToken := issueToken(t, svc, models.RoleAdmin)
	if w := doRequest(router, "/admin", "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("expected 200 for admin role, got %d", w.Code)
	}
}
