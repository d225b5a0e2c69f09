package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/request"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
)

// SubAdminHandler handles sub-admin management HTTP requests
type SubAdminHandler struct {
	subAdminService *service.SubAdminService
}

// NewSubAdminHandler creates a new sub-admin handler
func NewSubAdminHandler(subAdminService *service.SubAdminService) *SubAdminHandler {
	return &SubAdminHandler{subAdminService: subAdminService}
}

// List handles listing sub-admin accounts
func (h *SubAdminHandler) List(c *gin.Context) {
	subAdmins := h.subAdminService.List(c.Request.Context())
	response.OK(c, "Sub-admins retrieved successfully", subAdmins)
}

// Create handles creating a sub-admin account
func (h *SubAdminHandler) Create(c *gin.Context) {
	var req request.SubAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	subAdmin, err := h.subAdminService.Create(c.Request.Context(), subAdminInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sub-admin created successfully", subAdmin)
}

// Update handles updating a sub-admin account
func (h *SubAdminHandler) Update(c *gin.Context) {
	var req request.SubAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	subAdmin, err := h.subAdminService.Update(c.Request.Context(), c.Param("id"), subAdminInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sub-admin updated successfully", subAdmin)
}

// Delete handles deleting a sub-admin account
func (h *SubAdminHandler) Delete(c *gin.Context) {
	if err := h.subAdminService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sub-admin deleted successfully", nil)
}

func subAdminInput(req request.SubAdminRequest) gateway.SubAdminInput {
	return gateway.SubAdminInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Department:  enum.Department(req.Department),
		Permissions: req.Permissions,
		Active:      req.Active,
	}
}
