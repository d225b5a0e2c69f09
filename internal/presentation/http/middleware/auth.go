package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/domain/access"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
	"github.com/mkamande/shopsphere-admin/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set identity in context
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)
		c.Set("identity", access.Identity{
			ID:          claims.AdminID,
			IsAdmin:     claims.IsAdmin,
			Department:  enum.Department(claims.Department),
			Permissions: claims.Permissions,
		})

		c.Next()
	}
}

// RequireSection gates a route group behind one admin panel section. The
// check fails closed: missing identity, unknown section id or insufficient
// permissions all deny.
func RequireSection(sectionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		if !access.CanAccessSection(identity, sectionID) {
			response.Forbidden(c, "You do not have permission to access this section")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity returns the authenticated identity stored by AuthMiddleware.
func GetIdentity(c *gin.Context) (access.Identity, bool) {
	value, exists := c.Get("identity")
	if !exists {
		return access.Identity{}, false
	}
	identity, ok := value.(access.Identity)
	return identity, ok
}

// GetAdminID returns the authenticated admin's id, "" when unauthenticated.
func GetAdminID(c *gin.Context) string {
	value, exists := c.Get("admin_id")
	if !exists {
		return ""
	}
	adminID, _ := value.(string)
	return adminID
}
