package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/pkg/auth"
)

func newTestService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "internlink.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 7, Email: "student@example.com", Role: models.RoleStudent}
	display := auth.DisplayClaims{FirstName: "Ada", LastName: "Lovelace"}

	token, expiresIn, err := svc.GenerateToken(user, display)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "student@example.com" {
		t.Errorf("unexpected identity claims: %+v", claims)
	}
	if claims.Role != "student" {
		t.Errorf("expected role student, got %q", claims.Role)
	}
	if claims.FirstName != "Ada" || claims.LastName != "Lovelace" {
		t.Errorf("display claims did not round-trip: %+v", claims)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)
	user := &models.User{ID: 1, Email: "a@b.com", Role: models.RoleCompany}

	token, _, err := svc.GenerateToken(user, auth.DisplayClaims{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, auth.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenTampered(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 1, Email: "a@b.com", Role: models.RoleStudent}

	token, _, err := svc.GenerateToken(user, auth.DisplayClaims{})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	other := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})
	if _, err := other.ValidateToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong key, got %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := auth.ExtractBearerToken(""); !errors.Is(err, auth.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for empty header, got %v", err)
	}

	token, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("expected bare token, got %q (err %v)", token, err)
	}

	token, err = auth.ExtractBearerToken("abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("expected raw token to pass through, got %q (err %v)", token, err)
	}
}
