package auth

import (
	"context"
)

// Service defines the admin authentication use case.
type Service interface {
	// Login verifies the admin credentials and signs an access token
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}
