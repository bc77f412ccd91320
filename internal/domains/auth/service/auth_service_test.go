package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"labsite-backend/internal/config"
	"labsite-backend/internal/domains/auth"
	"labsite-backend/pkg/jwt"
)

func newTestService(t *testing.T, password string) auth.Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AdminConfig{
		Email:            "admin@labsite.local",
		PasswordHash:     string(hash),
		JWTSecret:        "test-secret",
		TokenExpiryHours: 2,
	}
	return NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, cfg.TokenExpiryHours))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t, "correct horse")

	res, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@labsite.local",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, "admin", res.Role)
	assert.Equal(t, int64(2*60*60), res.ExpiresIn)

	// The issued token carries the admin role claim
	claims, err := jwt.NewManager("test-secret", 2).ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin@labsite.local", claims.Email)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc := newTestService(t, "pw")

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ADMIN@Labsite.LOCAL",
		Password: "pw",
	})
	require.NoError(t, err)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc := newTestService(t, "pw")

	tests := []struct {
		name string
		req  *auth.LoginRequest
	}{
		{"wrong password", &auth.LoginRequest{Email: "admin@labsite.local", Password: "nope"}},
		{"wrong email", &auth.LoginRequest{Email: "someone@else.com", Password: "pw"}},
		{"empty password", &auth.LoginRequest{Email: "admin@labsite.local"}},
		{"malformed email", &auth.LoginRequest{Email: "not-an-email", Password: "pw"}},
		{"nil request", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}
