package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the composed dashboard stats payload. The chart
// granularity defaults to weekly; unknown values fold to weekly too.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	granularity := enum.ParseGranularity(c.DefaultQuery("granularity", "weekly"))
	stats := h.dashboardService.GetDashboardStats(c.Request.Context(), granularity)
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// GetSalesChart returns just the sales series, for the sales analytics area.
func (h *DashboardHandler) GetSalesChart(c *gin.Context) {
	granularity := enum.ParseGranularity(c.DefaultQuery("granularity", "weekly"))
	series := h.dashboardService.SalesChart(c.Request.Context(), granularity)
	response.OK(c, "Sales chart retrieved successfully", series)
}

// GetShippingDistribution returns just the order status distribution, for
// the shipping overview area.
func (h *DashboardHandler) GetShippingDistribution(c *gin.Context) {
	distribution := h.dashboardService.ShippingDistribution(c.Request.Context())
	response.OK(c, "Shipping distribution retrieved successfully", distribution)
}
