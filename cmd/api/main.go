package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/config"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/database"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/repository"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/upstream"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/handler"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/middleware"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/routes"
	"github.com/mkamande/shopsphere-admin/pkg/email"
	"github.com/mkamande/shopsphere-admin/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)

	// Keep the idempotency key table bounded
	middleware.StartIdempotencyCleanup(context.Background(), idempotencyRepo, time.Hour)

	// Initialize upstream clients
	commerceClient := upstream.NewCommerceClient(&cfg.Commerce)
	shiprocketClient := upstream.NewShiprocketClient(&cfg.Shiprocket)
	gstClient := upstream.NewGSTClient(&cfg.GST)

	// Read-through cache shared by the query services
	cacheStore := cache.New(cfg.Cache.TTL)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Initialize services
	authService := service.NewAuthService(commerceClient, cfg.Bootstrap, jwtManager)
	dashboardService := service.NewDashboardService(commerceClient, shiprocketClient, cacheStore, rng)
	catalogService := service.NewCatalogService(commerceClient, cacheStore)
	orderService := service.NewOrderService(commerceClient, cacheStore)
	customerService := service.NewCustomerService(commerceClient, cacheStore)
	subAdminService := service.NewSubAdminService(commerceClient, cacheStore)
	contentService := service.NewContentService(commerceClient, cacheStore, emailService)
	taxService := service.NewTaxService(gstClient, cacheStore)
	preferenceService := service.NewPreferenceService(preferenceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Navigation: handler.NewNavigationHandler(),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Order:      handler.NewOrderHandler(orderService),
		Customer:   handler.NewCustomerHandler(customerService),
		SubAdmin:   handler.NewSubAdminHandler(subAdminService),
		Content:    handler.NewContentHandler(contentService),
		Tax:        handler.NewTaxHandler(taxService),
		Preference: handler.NewPreferenceHandler(preferenceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
