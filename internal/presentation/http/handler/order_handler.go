package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/request"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
	"github.com/mkamande/shopsphere-admin/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders with filters
func (h *OrderHandler) List(c *gin.Context) {
	filter := bindOrderFilter(c)
	page := h.orderService.List(c.Request.Context(), filter)
	result := pagination.NewPaginatedResult(page.Orders,
		pagination.NewPagination(filter.Page, filter.Limit, page.Total))
	response.SuccessWithPagination(c, http.StatusOK, "Orders retrieved successfully", result)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles an order lifecycle transition
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req request.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), enum.OrderStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order status updated successfully", nil)
}

// Cancel handles cancelling an order
func (h *OrderHandler) Cancel(c *gin.Context) {
	if err := h.orderService.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order cancelled successfully", nil)
}

// TopCities handles the per-city order aggregates
func (h *OrderHandler) TopCities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	cities := h.orderService.TopCities(c.Request.Context(), limit)
	response.OK(c, "City stats retrieved successfully", cities)
}
