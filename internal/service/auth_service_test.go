package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/pkg/jwt"
)

func setupTestAuthService() (AuthService, *mockRepos, *jwt.Manager) {
	m := newMockRepos()
	cfg := testConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, m.repo, jwtMgr, nil, zap.NewNop())
	return svc, m, jwtMgr
}

func seedLoginUser(m *mockRepos, email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	zoneID := "zone-a"
	u := &model.User{
		UserID:       "user-login",
		Name:         "Mario Rossi",
		Email:        email,
		PasswordHash: string(hash),
		UserType:     model.UserTypeReferee,
		Level:        model.LevelRegionale,
		ZoneID:       &zoneID,
		IsActive:     true,
	}
	m.users.users[u.UserID] = u
	return u
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, m, jwtMgr := setupTestAuthService()
	user := seedLoginUser(m, "mario@test.local", "correct-password")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "mario@test.local", Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("token pair should be issued")
	}
	if resp.User.ID != user.UserID {
		t.Errorf("expected user %s, got %s", user.UserID, resp.User.ID)
	}

	claims, err := jwtMgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued access token should parse: %v", err)
	}
	if claims.TokenType != "access" || claims.UserID != user.UserID {
		t.Errorf("claims wrong: %+v", claims)
	}
	if claims.ZoneID != "zone-a" || claims.Level != model.LevelRegionale {
		t.Errorf("zone and level should ride in the claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	seedLoginUser(m, "mario@test.local", "correct-password")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	// unknown address reports the same error as a wrong password
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@test.local", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	user := seedLoginUser(m, "mario@test.local", "correct-password")
	user.IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "correct-password"})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got: %v", err)
	}
}

// ── RefreshToken ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	seedLoginUser(m, "mario@test.local", "correct-password")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("RefreshToken should succeed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("refresh should issue a new access token")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	seedLoginUser(m, "mario@test.local", "correct-password")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}

	// an access token presented as a refresh token is refused
	_, err = svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.AccessToken})
	if !errors.Is(err, ErrRefreshTokenBad) {
		t.Errorf("expected ErrRefreshTokenBad, got: %v", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	if !errors.Is(err, ErrRefreshTokenBad) {
		t.Errorf("expected ErrRefreshTokenBad, got: %v", err)
	}
}

func TestAuthService_RefreshToken_DisabledSinceLogin(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	user := seedLoginUser(m, "mario@test.local", "correct-password")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}

	user.IsActive = false
	_, err = svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got: %v", err)
	}
}

// ── Logout ──

func TestAuthService_Logout_NilRedisNoop(t *testing.T) {
	svc, m, jwtMgr := setupTestAuthService()
	seedLoginUser(m, "mario@test.local", "correct-password")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	claims, err := jwtMgr.ParseToken(login.AccessToken)
	if err != nil {
		t.Fatalf("token should parse: %v", err)
	}

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Errorf("logout without redis must degrade to a no-op: %v", err)
	}
}

// ── ChangePassword ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	user := seedLoginUser(m, "mario@test.local", "old-password-1")

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "old-password-1", NewPassword: "new-password-1",
	})
	if err != nil {
		t.Fatalf("ChangePassword should succeed: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "new-password-1"}); err != nil {
		t.Errorf("login with the new password should succeed: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "mario@test.local", Password: "old-password-1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password must stop working, got: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	user := seedLoginUser(m, "mario@test.local", "old-password-1")

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "guess", NewPassword: "new-password-1",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}
