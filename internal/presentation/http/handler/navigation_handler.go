package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/domain/access"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/middleware"
)

// NavigationHandler serves the per-identity navigation section list
type NavigationHandler struct{}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// GetSections returns the admin areas visible to the authenticated identity.
// Every section route still re-checks access per request; this list only
// drives what the navigation renders.
func (h *NavigationHandler) GetSections(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	response.OK(c, "Sections retrieved successfully", access.VisibleSections(identity))
}
