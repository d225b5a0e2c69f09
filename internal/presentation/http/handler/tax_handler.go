package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
)

// TaxHandler handles GST report HTTP requests
type TaxHandler struct {
	taxService *service.TaxService
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(taxService *service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// GetSummary returns the GST overview (zero-valued when the helper is down)
func (h *TaxHandler) GetSummary(c *gin.Context) {
	summary := h.taxService.Summary(c.Request.Context())
	response.OK(c, "GST summary retrieved successfully", summary)
}
