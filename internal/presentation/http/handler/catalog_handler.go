package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/request"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
	"github.com/mkamande/shopsphere-admin/pkg/pagination"
)

// CatalogHandler handles product and category HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles listing products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := bindPageFilter(c)
	page := h.catalogService.ListProducts(c.Request.Context(), filter)
	result := pagination.NewPaginatedResult(page.Products,
		pagination.NewPagination(filter.Page, filter.Limit, page.Total))
	response.SuccessWithPagination(c, http.StatusOK, "Products retrieved successfully", result)
}

// CreateProduct handles creating a product
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), productInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// UpdateProduct handles updating a product
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), productInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// DeleteProduct handles deleting a product
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product deleted successfully", nil)
}

// ListCategories handles listing categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := h.catalogService.ListCategories(c.Request.Context())
	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating a category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), gateway.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles updating a category
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), c.Param("id"), gateway.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category deleted successfully", nil)
}

func productInput(req request.ProductRequest) gateway.ProductInput {
	return gateway.ProductInput{
		Title:          req.Title,
		Images:         req.Images,
		Price:          req.Price,
		InventoryCount: req.InventoryCount,
		CategoryID:     req.CategoryID,
	}
}
