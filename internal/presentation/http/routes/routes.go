package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/config"
	domainRepo "github.com/mkamande/shopsphere-admin/internal/domain/repository"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/handler"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/middleware"
	"github.com/mkamande/shopsphere-admin/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Navigation *handler.NavigationHandler
	Dashboard  *handler.DashboardHandler
	Catalog    *handler.CatalogHandler
	Order      *handler.OrderHandler
	Customer   *handler.CustomerHandler
	SubAdmin   *handler.SubAdminHandler
	Content    *handler.ContentHandler
	Tax        *handler.TaxHandler
	Preference *handler.PreferenceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes. Every admin area is
// gated by RequireSection, which re-checks the permission matrix on each
// request regardless of what the navigation endpoint returned earlier.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-admin rate limiter
		rateLimiter := middleware.NewAdminRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Replay protection for mutating admin actions
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Navigation and persisted UI state
	protected.GET("/navigation/sections", h.Navigation.GetSections)
	protected.GET("/preferences/active-tab", h.Preference.GetActiveTab)
	protected.PUT("/preferences/active-tab", h.Preference.SetActiveTab)

	// Dashboard and its standalone analytics views
	dashboard := protected.Group("/dashboard", middleware.RequireSection("dashboard"))
	{
		dashboard.GET("", h.Dashboard.GetStats)
	}
	sales := protected.Group("/sales", middleware.RequireSection("sales"))
	{
		sales.GET("/chart", h.Dashboard.GetSalesChart)
	}
	shipping := protected.Group("/shipping", middleware.RequireSection("shipping"))
	{
		shipping.GET("/status-distribution", h.Dashboard.GetShippingDistribution)
	}

	// Catalog
	products := protected.Group("/products", middleware.RequireSection("products"))
	{
		products.GET("", h.Catalog.ListProducts)
		products.POST("", h.Catalog.CreateProduct)
		products.PUT("/:id", h.Catalog.UpdateProduct)
		products.DELETE("/:id", h.Catalog.DeleteProduct)
	}
	categories := protected.Group("/categories", middleware.RequireSection("categories"))
	{
		categories.GET("", h.Catalog.ListCategories)
		categories.POST("", h.Catalog.CreateCategory)
		categories.PUT("/:id", h.Catalog.UpdateCategory)
		categories.DELETE("/:id", h.Catalog.DeleteCategory)
	}

	// Orders
	orders := protected.Group("/orders", middleware.RequireSection("orders"))
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}
	cities := protected.Group("/cities", middleware.RequireSection("cities"))
	{
		cities.GET("", h.Order.TopCities)
	}

	// Returns
	returns := protected.Group("/returns", middleware.RequireSection("returns"))
	{
		returns.GET("", h.Customer.ListReturns)
		returns.PATCH("/:id/resolve", h.Customer.ResolveReturn)
	}

	// Customers
	customers := protected.Group("/customers", middleware.RequireSection("customers"))
	{
		customers.GET("", h.Customer.List)
		customers.PATCH("/:id/block", h.Customer.SetBlocked)
	}

	// Sub-admins
	subAdmins := protected.Group("/sub-admins", middleware.RequireSection("sub-admins"))
	{
		subAdmins.GET("", h.SubAdmin.List)
		subAdmins.POST("", h.SubAdmin.Create)
		subAdmins.PUT("/:id", h.SubAdmin.Update)
		subAdmins.DELETE("/:id", h.SubAdmin.Delete)
	}

	// Content
	reviews := protected.Group("/reviews", middleware.RequireSection("reviews"))
	{
		reviews.GET("", h.Content.ListReviews)
		reviews.DELETE("/:id", h.Content.DeleteReview)
	}
	banners := protected.Group("/banners", middleware.RequireSection("banners"))
	{
		banners.GET("", h.Content.ListBanners)
		banners.POST("", h.Content.CreateBanner)
		banners.PUT("/:id", h.Content.UpdateBanner)
		banners.DELETE("/:id", h.Content.DeleteBanner)
	}
	contact := protected.Group("/contact", middleware.RequireSection("contact"))
	{
		contact.GET("", h.Content.ListContactMessages)
		contact.POST("/:id/reply", h.Content.ReplyToContact)
	}

	// Finance
	gst := protected.Group("/gst", middleware.RequireSection("gst"))
	{
		gst.GET("/summary", h.Tax.GetSummary)
	}
}
