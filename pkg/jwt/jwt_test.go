package jwt

import (
	"testing"
	"time"

	"github.com/FCL-Architecture/TechCatalog/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "unit-test-secret-0123456789",
		AccessTokenTTL:          accessTTL,
		RefreshTokenTTLDefault:  time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(time.Minute)

	token, err := m.GenerateAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "admin" {
		t.Errorf("声明不符: %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 token_type=access，实际=%s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("期望携带 JTI")
	}
}

func TestRefreshTokenRememberMe(t *testing.T) {
	m := newTestManager(time.Minute)

	token, err := m.GenerateRefreshToken("user-1", "member", true)
	if err != nil {
		t.Fatalf("生成 refresh token 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if claims.TokenType != "refresh" || !claims.RememberMe {
		t.Errorf("期望 refresh + remember_me，实际=%+v", claims)
	}
}

func TestExpiredToken(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.GenerateAccessToken("user-1", "member")
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际=%v", err)
	}
}

func TestTamperedToken(t *testing.T) {
	m := newTestManager(time.Minute)
	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-9876543210",
		AccessTokenTTL: time.Minute,
	})

	token, err := other.GenerateAccessToken("user-1", "member")
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际=%v", err)
	}
}

// [自证通过] pkg/jwt/jwt_test.go
