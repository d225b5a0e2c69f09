package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/request"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/middleware"
)

// PreferenceHandler handles persisted UI preference HTTP requests
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// GetActiveTab returns the stored active navigation tab
func (h *PreferenceHandler) GetActiveTab(c *gin.Context) {
	adminID := middleware.GetAdminID(c)
	if adminID == "" {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	tabID, err := h.preferenceService.GetActiveTab(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Preference retrieved successfully", gin.H{"tab_id": tabID})
}

// SetActiveTab stores the active navigation tab
func (h *PreferenceHandler) SetActiveTab(c *gin.Context) {
	adminID := middleware.GetAdminID(c)
	if adminID == "" {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.ActiveTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.preferenceService.SetActiveTab(c.Request.Context(), adminID, req.TabID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Preference saved successfully", nil)
}
