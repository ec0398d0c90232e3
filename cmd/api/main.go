package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/venuebook-api/internal/application/service"
	"github.com/sangkips/venuebook-api/internal/config"
	"github.com/sangkips/venuebook-api/internal/infrastructure/database"
	"github.com/sangkips/venuebook-api/internal/infrastructure/repository"
	"github.com/sangkips/venuebook-api/internal/presentation/http/handler"
	"github.com/sangkips/venuebook-api/internal/presentation/http/routes"
	"github.com/sangkips/venuebook-api/pkg/email"
	"github.com/sangkips/venuebook-api/pkg/utils"
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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	hallRepo := repository.NewHallRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	serviceItemRepo := repository.NewVendorServiceItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	vendorBookingRepo := repository.NewVendorBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Sweep expired idempotency keys hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to delete expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, customerRepo, jwtManager)
	taxCalculator := service.NewTaxCalculator(cfg.Tax)
	pricingService := service.NewPricingService(hallRepo, vendorRepo, serviceItemRepo)
	bookingService := service.NewBookingService(bookingRepo, vendorBookingRepo, hallRepo, customerRepo, pricingService, taxCalculator)
	invoiceService := service.NewInvoiceService(invoiceRepo, bookingRepo, cfg.Platform)
	notificationService := service.NewNotificationService(notificationRepo, customerRepo, bookingRepo, emailService)
	approvalService := service.NewApprovalService(bookingRepo, vendorBookingRepo, invoiceService, notificationService)
	hallService := service.NewHallService(hallRepo)
	vendorService := service.NewVendorService(vendorRepo, serviceItemRepo)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Booking:      handler.NewBookingHandler(bookingService, approvalService),
		Invoice:      handler.NewInvoiceHandler(invoiceService),
		Hall:         handler.NewHallHandler(hallService),
		Vendor:       handler.NewVendorHandler(vendorService),
		Customer:     handler.NewCustomerHandler(customerService),
		Notification: handler.NewNotificationHandler(notificationService),
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
