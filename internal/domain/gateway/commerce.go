package gateway

import (
	"context"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// PageFilter is the common list-query shape forwarded to the commerce API.
type PageFilter struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Search string
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	PageFilter
	Status    enum.OrderStatus // empty = all statuses
	StartDate *time.Time
	EndDate   *time.Time
}

// OrderPage is one page of orders plus the upstream pagination envelope.
type OrderPage struct {
	Orders []entity.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Pages  int            `json:"pages"`
}

// ProductPage is one page of products.
type ProductPage struct {
	Products []entity.Product `json:"products"`
	Total    int64            `json:"total"`
}

// CustomerPage is one page of customers.
type CustomerPage struct {
	Customers []entity.Customer `json:"customers"`
	Total     int64             `json:"total"`
}

// ProductInput is the write shape for product create/update.
type ProductInput struct {
	Title          string   `json:"title"`
	Images         []string `json:"images"`
	Price          float64  `json:"price"`
	InventoryCount int      `json:"inventoryCount"`
	CategoryID     string   `json:"categoryId"`
}

// CategoryInput is the write shape for category create/update.
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BannerInput is the write shape for promo banner create/update.
type BannerInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// SubAdminInput is the write shape for sub-admin create/update.
type SubAdminInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password,omitempty"`
	Department  enum.Department `json:"department"`
	Permissions []string        `json:"permissions"`
	Active      bool            `json:"active"`
}

// AdminAccount is the identity the commerce API returns for valid admin
// credentials.
type AdminAccount struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	IsAdmin     bool            `json:"is_admin"`
	Department  enum.Department `json:"department"`
	Permissions []string        `json:"permissions"`
}

// CommerceGateway is the upstream commerce REST API. Every method maps to one
// documented endpoint; implementations parse responses into fully-defaulted
// entities at this boundary.
type CommerceGateway interface {
	// Auth
	Login(ctx context.Context, email, password string) (*AdminAccount, error)

	// Catalog
	ListProducts(ctx context.Context, filter PageFilter) (*ProductPage, error)
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Orders
	ListOrders(ctx context.Context, filter OrderFilter) (*OrderPage, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status enum.OrderStatus) error
	TopCities(ctx context.Context, limit int) ([]entity.CityStats, error)

	// Customers and returns
	ListCustomers(ctx context.Context, filter PageFilter) (*CustomerPage, error)
	SetCustomerBlocked(ctx context.Context, id string, blocked bool) error
	ListReturns(ctx context.Context, filter PageFilter) ([]entity.ReturnRequest, error)
	ResolveReturn(ctx context.Context, id, resolution string) error

	// Sub-admins
	ListSubAdmins(ctx context.Context) ([]entity.SubAdmin, error)
	CreateSubAdmin(ctx context.Context, input SubAdminInput) (*entity.SubAdmin, error)
	UpdateSubAdmin(ctx context.Context, id string, input SubAdminInput) (*entity.SubAdmin, error)
	DeleteSubAdmin(ctx context.Context, id string) error

	// Content
	ListReviews(ctx context.Context, filter PageFilter) ([]entity.Review, error)
	DeleteReview(ctx context.Context, id string) error
	ListBanners(ctx context.Context) ([]entity.Banner, error)
	CreateBanner(ctx context.Context, input BannerInput) (*entity.Banner, error)
	UpdateBanner(ctx context.Context, id string, input BannerInput) (*entity.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	ListContactMessages(ctx context.Context, filter PageFilter) ([]entity.ContactMessage, error)
	MarkContactReplied(ctx context.Context, id string) error
}
