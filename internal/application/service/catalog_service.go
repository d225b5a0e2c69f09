package service

import (
	"context"
	"strconv"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
	"github.com/mkamande/shopsphere-admin/pkg/utils"
)

// CatalogService handles products and categories. Reads go through the result
// cache; writes validate, pass through to the commerce API and invalidate
// affected reads.
type CatalogService struct {
	commerce gateway.CommerceGateway
	cache    *cache.Store
}

// NewCatalogService creates a new catalog service
func NewCatalogService(commerce gateway.CommerceGateway, cacheStore *cache.Store) *CatalogService {
	return &CatalogService{commerce: commerce, cache: cacheStore}
}

// ListProducts returns one page of products, empty on upstream failure.
func (s *CatalogService) ListProducts(ctx context.Context, filter gateway.PageFilter) *gateway.ProductPage {
	key := cache.Key("products", pageParts(filter)...)
	if cached, ok := s.cache.Get(key); ok {
		if page, ok := cached.(*gateway.ProductPage); ok {
			return page
		}
	}

	gen := s.cache.Begin(key)
	page, err := s.commerce.ListProducts(ctx, filter)
	if err != nil {
		return &gateway.ProductPage{Products: []entity.Product{}}
	}
	s.cache.Complete(key, gen, page, "products")
	return page
}

// CreateProduct validates and creates a product.
func (s *CatalogService) CreateProduct(ctx context.Context, input gateway.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product, err := s.commerce.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("products")
	return product, nil
}

// UpdateProduct validates and updates a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input gateway.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product, err := s.commerce.UpdateProduct(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("products")
	return product, nil
}

// DeleteProduct deletes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.commerce.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate("products")
	return nil
}

// ListCategories returns all categories, empty on upstream failure.
func (s *CatalogService) ListCategories(ctx context.Context) []entity.Category {
	key := cache.Key("categories")
	if cached, ok := s.cache.Get(key); ok {
		if categories, ok := cached.([]entity.Category); ok {
			return categories
		}
	}

	gen := s.cache.Begin(key)
	categories, err := s.commerce.ListCategories(ctx)
	if err != nil {
		return []entity.Category{}
	}
	s.cache.Complete(key, gen, categories, "categories")
	return categories
}

// CreateCategory creates a category, defaulting the slug from the name.
func (s *CatalogService) CreateCategory(ctx context.Context, input gateway.CategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}
	if input.Slug == "" {
		input.Slug = utils.Slugify(input.Name)
	}
	category, err := s.commerce.CreateCategory(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("categories")
	return category, nil
}

// UpdateCategory updates a category.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input gateway.CategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}
	if input.Slug == "" {
		input.Slug = utils.Slugify(input.Name)
	}
	category, err := s.commerce.UpdateCategory(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("categories")
	return category, nil
}

// DeleteCategory deletes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.commerce.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate("categories", "products")
	return nil
}

func validateProductInput(input gateway.ProductInput) error {
	var fieldErrors []apperror.FieldError
	if input.Title == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "title", Message: "title is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "price must not be negative"})
	}
	if input.InventoryCount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "inventoryCount", Message: "inventory must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// pageParts turns a page filter into cache key parts.
func pageParts(filter gateway.PageFilter) []string {
	parts := make([]string, 0, 5)
	if filter.Page > 0 {
		parts = append(parts, "page="+strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		parts = append(parts, "limit="+strconv.Itoa(filter.Limit))
	}
	if filter.Sort != "" {
		parts = append(parts, "sort="+filter.Sort)
	}
	if filter.Order != "" {
		parts = append(parts, "order="+filter.Order)
	}
	if filter.Search != "" {
		parts = append(parts, "search="+filter.Search)
	}
	return parts
}
