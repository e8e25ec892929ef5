package jwt

import (
	"testing"
	"time"

	"golf-arbitri/backend/config"
)

func testManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-0123456789abcdef",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestManager_GenerateAndParse(t *testing.T) {
	m := testManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("user-001", "referee", "zone-002", "regionale")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != "user-001" {
		t.Errorf("expected UserID=user-001, got %s", claims.UserID)
	}
	if claims.UserType != "referee" {
		t.Errorf("expected UserType=referee, got %s", claims.UserType)
	}
	if claims.ZoneID != "zone-002" {
		t.Errorf("expected ZoneID=zone-002, got %s", claims.ZoneID)
	}
	if claims.TokenType != "access" {
		t.Errorf("expected TokenType=access, got %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("expected a JWT ID for blacklisting")
	}
}

func TestManager_ParseExpired(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.GenerateAccessToken("user-001", "referee", "", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestManager_ParseWrongSecret(t *testing.T) {
	m := testManager(15 * time.Minute)
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "another-secret-0123456789abcdef",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("user-001", "referee", "", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_RefreshTokenType(t *testing.T) {
	m := testManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("user-001", "admin", "zone-001", "nazionale")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("expected TokenType=refresh, got %s", claims.TokenType)
	}
}
