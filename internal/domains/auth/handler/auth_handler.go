package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/auth"
	"labsite-backend/internal/shared/response"
	"labsite-backend/pkg/logger"
)

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.Info("admin login rejected", map[string]interface{}{
				"email": req.Email,
				"ip":    c.ClientIP(),
			})
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.InternalServerError(c, "Login failed")
		return
	}

	response.Success(c, http.StatusOK, result)
}
