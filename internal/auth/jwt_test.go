package auth

import (
	"testing"
	"time"

	"github.com/omnistock/inventory-service/internal/apperr"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("user-1", "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %s", claims.Subject)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %s", claims.Username)
	}
}

func TestVerify_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate("user-1", "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, err = tm.Verify(token)
	if !apperr.Is(err, apperr.Auth) {
		t.Errorf("expected Auth error for expired token, got: %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("user-1", "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	if !apperr.Is(err, apperr.Auth) {
		t.Errorf("expected Auth error for wrong secret, got: %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	if _, err := tm.Verify("not.a.token"); !apperr.Is(err, apperr.Auth) {
		t.Errorf("expected Auth error, got: %v", err)
	}
}
