package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"labsite-backend/internal/config"
	"labsite-backend/internal/domains/auth"
	"labsite-backend/pkg/jwt"
)

const adminRole = "admin"

// authService verifies logins against the single configured admin
// account. There is no user table; the site has exactly one editor
// identity.
type authService struct {
	cfg config.AdminConfig
	jwt *jwt.Manager
}

// NewAuthService creates the admin auth service.
func NewAuthService(cfg config.AdminConfig, manager *jwt.Manager) auth.Service {
	return &authService{
		cfg: cfg,
		jwt: manager,
	}
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if req == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := req.Validate(); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !strings.EqualFold(strings.TrimSpace(req.Email), s.cfg.Email) {
		return nil, auth.ErrInvalidCredentials
	}

	// Constant-time comparison against the configured bcrypt hash
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAdminToken(s.cfg.Email)
	if err != nil {
		return nil, err
	}

	expiry := s.cfg.TokenExpiryHours
	if expiry <= 0 {
		expiry = 24
	}

	return &auth.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64((time.Duration(expiry) * time.Hour).Seconds()),
		Email:     s.cfg.Email,
		Role:      adminRole,
	}, nil
}
