package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/config"
	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// CommerceClient talks to the upstream commerce REST API on behalf of the
// admin panel. When client credentials are configured it authenticates
// service-to-service through an OAuth2 token source; otherwise it sends
// plain requests (local development against a stub backend).
type CommerceClient struct {
	apiClient
}

// NewCommerceClient creates a commerce API client from config.
func NewCommerceClient(cfg *config.CommerceConfig) *CommerceClient {
	base := &http.Client{Timeout: cfg.Timeout}

	client := base
	if cfg.ClientID != "" && cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		client = cc.Client(ctx)
		client.Timeout = cfg.Timeout
	}

	return &CommerceClient{apiClient: apiClient{baseURL: cfg.BaseURL, client: client}}
}

// ---------------------------------------------------------------------------
// Raw response shapes. The commerce API is loosely typed (optional fields,
// `_id` vs `id`, `inventoryCount` vs `stock`), so every shape is decoded here
// and converted into a fully-defaulted entity before leaving this package.
// ---------------------------------------------------------------------------

type rawID struct {
	MongoID string `json:"_id"`
	PlainID string `json:"id"`
}

func (r rawID) value() string {
	if r.MongoID != "" {
		return r.MongoID
	}
	return r.PlainID
}

type rawOrder struct {
	rawID
	InvoiceNo string  `json:"invoiceNo"`
	Total     float64 `json:"total"`
	CreatedAt string  `json:"createdAt"`
	Payment   struct {
		Method string `json:"method"`
		Status string `json:"status"`
	} `json:"payment"`
	Items []struct {
		ProductID string  `json:"productId"`
		Title     string  `json:"title"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unitPrice"`
	} `json:"items"`
	StatusHistory []struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	} `json:"statusHistory"`
	Customer struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"customer"`
	ShippingAddress struct {
		City string `json:"city"`
	} `json:"shippingAddress"`
}

func (r *rawOrder) toEntity() entity.Order {
	order := entity.Order{
		ID:            r.value(),
		InvoiceNo:     r.InvoiceNo,
		CustomerName:  r.Customer.Name,
		CustomerEmail: r.Customer.Email,
		City:          r.ShippingAddress.City,
		Total:         r.Total,
		Payment: entity.Payment{
			Method: enum.NormalizePaymentMethod(r.Payment.Method),
			Status: enum.ParsePaymentStatus(r.Payment.Status),
		},
		Items:         make([]entity.OrderItem, 0, len(r.Items)),
		StatusHistory: make([]entity.StatusChange, 0, len(r.StatusHistory)),
		CreatedAt:     parseTime(r.CreatedAt),
	}
	for _, item := range r.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	for _, change := range r.StatusHistory {
		order.StatusHistory = append(order.StatusHistory, entity.StatusChange{
			Status:    enum.ParseOrderStatus(change.Status),
			ChangedAt: parseTime(change.Timestamp),
		})
	}
	return order
}

type rawProduct struct {
	rawID
	Title          string       `json:"title"`
	Slug           string       `json:"slug"`
	Images         []string     `json:"images"`
	Price          float64      `json:"price"`
	InventoryCount *int         `json:"inventoryCount"`
	Stock          *int         `json:"stock"`
	Variants       []rawVariant `json:"variants"`
	CategoryID     string       `json:"categoryId"`
	CreatedAt      string       `json:"createdAt"`
}

type rawVariant struct {
	rawID
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func (r *rawProduct) toEntity() entity.Product {
	// older catalog records carry `stock`, newer ones `inventoryCount`
	inventory := 0
	if r.InventoryCount != nil {
		inventory = *r.InventoryCount
	} else if r.Stock != nil {
		inventory = *r.Stock
	}

	product := entity.Product{
		ID:             r.value(),
		Title:          r.Title,
		Slug:           r.Slug,
		Images:         r.Images,
		Price:          r.Price,
		InventoryCount: inventory,
		Variants:       make([]entity.Variant, 0, len(r.Variants)),
		CategoryID:     r.CategoryID,
		CreatedAt:      parseTime(r.CreatedAt),
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	for _, v := range r.Variants {
		product.Variants = append(product.Variants, entity.Variant{
			ID:    v.value(),
			Name:  v.Name,
			Price: v.Price,
			Stock: v.Stock,
		})
	}
	return product
}

type rawPagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

// Login checks admin credentials against the commerce API and returns the
// account's authorization profile.
func (c *CommerceClient) Login(ctx context.Context, email, password string) (*gateway.AdminAccount, error) {
	var data struct {
		Admin struct {
			rawID
			Name        string   `json:"name"`
			Email       string   `json:"email"`
			IsAdmin     bool     `json:"isAdmin"`
			Department  string   `json:"department"`
			Permissions []string `json:"permissions"`
		} `json:"admin"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/admin/login", nil, body, &data); err != nil {
		return nil, err
	}

	account := &gateway.AdminAccount{
		ID:          data.Admin.value(),
		Name:        data.Admin.Name,
		Email:       data.Admin.Email,
		IsAdmin:     data.Admin.IsAdmin,
		Department:  enum.Department(data.Admin.Department),
		Permissions: data.Admin.Permissions,
	}
	if account.Permissions == nil {
		account.Permissions = []string{}
	}
	return account, nil
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

func (c *CommerceClient) ListProducts(ctx context.Context, filter gateway.PageFilter) (*gateway.ProductPage, error) {
	var data struct {
		Pagination rawPagination `json:"pagination"`
		Products   []rawProduct  `json:"products"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/products", pageQuery(filter), nil, &data); err != nil {
		return nil, err
	}

	page := &gateway.ProductPage{
		Products: make([]entity.Product, 0, len(data.Products)),
		Total:    data.Pagination.Total,
	}
	for i := range data.Products {
		page.Products = append(page.Products, data.Products[i].toEntity())
	}
	return page, nil
}

func (c *CommerceClient) CreateProduct(ctx context.Context, input gateway.ProductInput) (*entity.Product, error) {
	var raw rawProduct
	if err := c.doJSON(ctx, http.MethodPost, "/products", nil, input, &raw); err != nil {
		return nil, err
	}
	product := raw.toEntity()
	return &product, nil
}

func (c *CommerceClient) UpdateProduct(ctx context.Context, id string, input gateway.ProductInput) (*entity.Product, error) {
	var raw rawProduct
	if err := c.doJSON(ctx, http.MethodPut, "/products/"+url.PathEscape(id), nil, input, &raw); err != nil {
		return nil, err
	}
	product := raw.toEntity()
	return &product, nil
}

func (c *CommerceClient) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, nil)
}

func (c *CommerceClient) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var data struct {
		Categories []struct {
			rawID
			Name         string `json:"name"`
			Slug         string `json:"slug"`
			ProductCount int    `json:"productCount"`
		} `json:"categories"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, &data); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(data.Categories))
	for _, raw := range data.Categories {
		categories = append(categories, entity.Category{
			ID:           raw.value(),
			Name:         raw.Name,
			Slug:         raw.Slug,
			ProductCount: raw.ProductCount,
		})
	}
	return categories, nil
}

func (c *CommerceClient) CreateCategory(ctx context.Context, input gateway.CategoryInput) (*entity.Category, error) {
	var raw struct {
		rawID
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nil, input, &raw); err != nil {
		return nil, err
	}
	return &entity.Category{ID: raw.value(), Name: raw.Name, Slug: raw.Slug}, nil
}

func (c *CommerceClient) UpdateCategory(ctx context.Context, id string, input gateway.CategoryInput) (*entity.Category, error) {
	var raw struct {
		rawID
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), nil, input, &raw); err != nil {
		return nil, err
	}
	return &entity.Category{ID: raw.value(), Name: raw.Name, Slug: raw.Slug}, nil
}

func (c *CommerceClient) DeleteCategory(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil, nil)
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

func (c *CommerceClient) ListOrders(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error) {
	query := pageQuery(filter.PageFilter)
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.StartDate != nil {
		query.Set("startDate", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		query.Set("endDate", filter.EndDate.Format("2006-01-02"))
	}

	var data struct {
		Orders     []rawOrder    `json:"orders"`
		Pagination rawPagination `json:"pagination"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/orders", query, nil, &data); err != nil {
		return nil, err
	}

	page := &gateway.OrderPage{
		Orders: make([]entity.Order, 0, len(data.Orders)),
		Total:  data.Pagination.Total,
		Page:   data.Pagination.Page,
		Limit:  data.Pagination.Limit,
		Pages:  data.Pagination.Pages,
	}
	for i := range data.Orders {
		page.Orders = append(page.Orders, data.Orders[i].toEntity())
	}
	return page, nil
}

func (c *CommerceClient) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var raw rawOrder
	if err := c.doJSON(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return nil, err
	}
	order := raw.toEntity()
	return &order, nil
}

func (c *CommerceClient) UpdateOrderStatus(ctx context.Context, id string, status enum.OrderStatus) error {
	body := map[string]string{"orderStatus": string(status)}
	return c.doJSON(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id)+"/status", nil, body, nil)
}

func (c *CommerceClient) TopCities(ctx context.Context, limit int) ([]entity.CityStats, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var data struct {
		TopCities []struct {
			City              string  `json:"city"`
			OrderCount        int64   `json:"orderCount"`
			TotalRevenue      float64 `json:"totalRevenue"`
			AverageOrderValue float64 `json:"averageOrderValue"`
			PaidOrders        int64   `json:"paidOrders"`
		} `json:"topCities"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/orders/stats/cities", query, nil, &data); err != nil {
		return nil, err
	}

	cities := make([]entity.CityStats, 0, len(data.TopCities))
	for _, raw := range data.TopCities {
		cities = append(cities, entity.CityStats{
			City:              raw.City,
			OrderCount:        raw.OrderCount,
			TotalRevenue:      raw.TotalRevenue,
			AverageOrderValue: raw.AverageOrderValue,
			PaidOrders:        raw.PaidOrders,
		})
	}
	return cities, nil
}

// ---------------------------------------------------------------------------
// Customers and returns
// ---------------------------------------------------------------------------

func (c *CommerceClient) ListCustomers(ctx context.Context, filter gateway.PageFilter) (*gateway.CustomerPage, error) {
	var data struct {
		Users      []rawCustomer `json:"users"`
		Pagination rawPagination `json:"pagination"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users", pageQuery(filter), nil, &data); err != nil {
		return nil, err
	}

	page := &gateway.CustomerPage{
		Customers: make([]entity.Customer, 0, len(data.Users)),
		Total:     data.Pagination.Total,
	}
	for _, raw := range data.Users {
		page.Customers = append(page.Customers, raw.toEntity())
	}
	return page, nil
}

type rawCustomer struct {
	rawID
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Blocked    bool   `json:"blocked"`
	OrderCount int    `json:"orderCount"`
	CreatedAt  string `json:"createdAt"`
}

func (r rawCustomer) toEntity() entity.Customer {
	return entity.Customer{
		ID:         r.value(),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Blocked:    r.Blocked,
		OrderCount: r.OrderCount,
		CreatedAt:  parseTime(r.CreatedAt),
	}
}

func (c *CommerceClient) SetCustomerBlocked(ctx context.Context, id string, blocked bool) error {
	body := map[string]bool{"blocked": blocked}
	return c.doJSON(ctx, http.MethodPatch, "/users/"+url.PathEscape(id)+"/block", nil, body, nil)
}

func (c *CommerceClient) ListReturns(ctx context.Context, filter gateway.PageFilter) ([]entity.ReturnRequest, error) {
	var data struct {
		Returns []struct {
			rawID
			OrderID   string `json:"orderId"`
			Reason    string `json:"reason"`
			Status    string `json:"status"`
			CreatedAt string `json:"createdAt"`
		} `json:"returns"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/returns", pageQuery(filter), nil, &data); err != nil {
		return nil, err
	}

	returns := make([]entity.ReturnRequest, 0, len(data.Returns))
	for _, raw := range data.Returns {
		returns = append(returns, entity.ReturnRequest{
			ID:        raw.value(),
			OrderID:   raw.OrderID,
			Reason:    raw.Reason,
			Status:    raw.Status,
			CreatedAt: parseTime(raw.CreatedAt),
		})
	}
	return returns, nil
}

func (c *CommerceClient) ResolveReturn(ctx context.Context, id, resolution string) error {
	body := map[string]string{"resolution": resolution}
	return c.doJSON(ctx, http.MethodPatch, "/returns/"+url.PathEscape(id)+"/resolve", nil, body, nil)
}

// ---------------------------------------------------------------------------
// Sub-admins
// ---------------------------------------------------------------------------

type rawSubAdmin struct {
	rawID
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Department  string   `json:"department"`
	Permissions []string `json:"permissions"`
	Active      bool     `json:"active"`
	CreatedAt   string   `json:"createdAt"`
}

func (r rawSubAdmin) toEntity() entity.SubAdmin {
	subAdmin := entity.SubAdmin{
		ID:          r.value(),
		Name:        r.Name,
		Email:       r.Email,
		Department:  enum.Department(r.Department),
		Permissions: r.Permissions,
		Active:      r.Active,
		CreatedAt:   parseTime(r.CreatedAt),
	}
	if subAdmin.Permissions == nil {
		subAdmin.Permissions = []string{}
	}
	return subAdmin
}

func (c *CommerceClient) ListSubAdmins(ctx context.Context) ([]entity.SubAdmin, error) {
	var data struct {
		SubAdmins []rawSubAdmin `json:"subAdmins"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/sub-admins", nil, nil, &data); err != nil {
		return nil, err
	}

	subAdmins := make([]entity.SubAdmin, 0, len(data.SubAdmins))
	for _, raw := range data.SubAdmins {
		subAdmins = append(subAdmins, raw.toEntity())
	}
	return subAdmins, nil
}

func (c *CommerceClient) CreateSubAdmin(ctx context.Context, input gateway.SubAdminInput) (*entity.SubAdmin, error) {
	var raw rawSubAdmin
	if err := c.doJSON(ctx, http.MethodPost, "/sub-admins", nil, input, &raw); err != nil {
		return nil, err
	}
	subAdmin := raw.toEntity()
	return &subAdmin, nil
}

func (c *CommerceClient) UpdateSubAdmin(ctx context.Context, id string, input gateway.SubAdminInput) (*entity.SubAdmin, error) {
	var raw rawSubAdmin
	if err := c.doJSON(ctx, http.MethodPut, "/sub-admins/"+url.PathEscape(id), nil, input, &raw); err != nil {
		return nil, err
	}
	subAdmin := raw.toEntity()
	return &subAdmin, nil
}

func (c *CommerceClient) DeleteSubAdmin(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/sub-admins/"+url.PathEscape(id), nil, nil, nil)
}

// ---------------------------------------------------------------------------
// Content
// ---------------------------------------------------------------------------

func (c *CommerceClient) ListReviews(ctx context.Context, filter gateway.PageFilter) ([]entity.Review, error) {
	var data struct {
		Reviews []struct {
			rawID
			ProductID    string `json:"productId"`
			ProductTitle string `json:"productTitle"`
			CustomerName string `json:"customerName"`
			Rating       int    `json:"rating"`
			Comment      string `json:"comment"`
			CreatedAt    string `json:"createdAt"`
		} `json:"reviews"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/reviews", pageQuery(filter), nil, &data); err != nil {
		return nil, err
	}

	reviews := make([]entity.Review, 0, len(data.Reviews))
	for _, raw := range data.Reviews {
		reviews = append(reviews, entity.Review{
			ID:           raw.value(),
			ProductID:    raw.ProductID,
			ProductTitle: raw.ProductTitle,
			CustomerName: raw.CustomerName,
			Rating:       raw.Rating,
			Comment:      raw.Comment,
			CreatedAt:    parseTime(raw.CreatedAt),
		})
	}
	return reviews, nil
}

func (c *CommerceClient) DeleteReview(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, nil, nil)
}

type rawBanner struct {
	rawID
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	Link      string `json:"link"`
	Position  int    `json:"position"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}

func (r rawBanner) toEntity() entity.Banner {
	return entity.Banner{
		ID:        r.value(),
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		Link:      r.Link,
		Position:  r.Position,
		Active:    r.Active,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

func (c *CommerceClient) ListBanners(ctx context.Context) ([]entity.Banner, error) {
	var data struct {
		Banners []rawBanner `json:"banners"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/banners", nil, nil, &data); err != nil {
		return nil, err
	}

	banners := make([]entity.Banner, 0, len(data.Banners))
	for _, raw := range data.Banners {
		banners = append(banners, raw.toEntity())
	}
	return banners, nil
}

func (c *CommerceClient) CreateBanner(ctx context.Context, input gateway.BannerInput) (*entity.Banner, error) {
	var raw rawBanner
	if err := c.doJSON(ctx, http.MethodPost, "/banners", nil, input, &raw); err != nil {
		return nil, err
	}
	banner := raw.toEntity()
	return &banner, nil
}

func (c *CommerceClient) UpdateBanner(ctx context.Context, id string, input gateway.BannerInput) (*entity.Banner, error) {
	var raw rawBanner
	if err := c.doJSON(ctx, http.MethodPut, "/banners/"+url.PathEscape(id), nil, input, &raw); err != nil {
		return nil, err
	}
	banner := raw.toEntity()
	return &banner, nil
}

func (c *CommerceClient) DeleteBanner(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/banners/"+url.PathEscape(id), nil, nil, nil)
}

func (c *CommerceClient) ListContactMessages(ctx context.Context, filter gateway.PageFilter) ([]entity.ContactMessage, error) {
	var data struct {
		Messages []struct {
			rawID
			Name      string `json:"name"`
			Email     string `json:"email"`
			Subject   string `json:"subject"`
			Message   string `json:"message"`
			Replied   bool   `json:"replied"`
			CreatedAt string `json:"createdAt"`
		} `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/contact-messages", pageQuery(filter), nil, &data); err != nil {
		return nil, err
	}

	messages := make([]entity.ContactMessage, 0, len(data.Messages))
	for _, raw := range data.Messages {
		messages = append(messages, entity.ContactMessage{
			ID:        raw.value(),
			Name:      raw.Name,
			Email:     raw.Email,
			Subject:   raw.Subject,
			Message:   raw.Message,
			Replied:   raw.Replied,
			CreatedAt: parseTime(raw.CreatedAt),
		})
	}
	return messages, nil
}

func (c *CommerceClient) MarkContactReplied(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPatch, "/contact-messages/"+url.PathEscape(id)+"/replied", nil, nil, nil)
}

func pageQuery(filter gateway.PageFilter) url.Values {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Sort != "" {
		query.Set("sort", filter.Sort)
	}
	if filter.Order != "" {
		query.Set("order", filter.Order)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	return query
}
