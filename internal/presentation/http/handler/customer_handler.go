package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/request"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
	"github.com/mkamande/shopsphere-admin/pkg/pagination"
)

// CustomerHandler handles customer and return-request HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	filter := bindPageFilter(c)
	page := h.customerService.List(c.Request.Context(), filter)
	result := pagination.NewPaginatedResult(page.Customers,
		pagination.NewPagination(filter.Page, filter.Limit, page.Total))
	response.SuccessWithPagination(c, http.StatusOK, "Customers retrieved successfully", result)
}

// SetBlocked handles toggling a customer's blocked flag
func (h *CustomerHandler) SetBlocked(c *gin.Context) {
	var req request.BlockCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.customerService.SetBlocked(c.Request.Context(), c.Param("id"), req.Blocked); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated successfully", nil)
}

// ListReturns handles listing return requests
func (h *CustomerHandler) ListReturns(c *gin.Context) {
	returns := h.customerService.ListReturns(c.Request.Context(), bindPageFilter(c))
	response.OK(c, "Returns retrieved successfully", returns)
}

// ResolveReturn handles accepting or rejecting a return request
func (h *CustomerHandler) ResolveReturn(c *gin.Context) {
	var req request.ReturnResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.customerService.ResolveReturn(c.Request.Context(), c.Param("id"), req.Resolution); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Return resolved successfully", nil)
}
