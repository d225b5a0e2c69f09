package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/request"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles admin login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"account":       out.Account,
		"access_token":  out.AccessToken,
		"refresh_token": out.RefreshToken,
	})
}

// RefreshToken exchanges a refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	out, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", gin.H{
		"account":       out.Account,
		"access_token":  out.AccessToken,
		"refresh_token": out.RefreshToken,
	})
}

// GetProfile returns the authenticated identity's authorization profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	response.OK(c, "Profile retrieved successfully", identity)
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// them.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, "Logged out", nil)
}
