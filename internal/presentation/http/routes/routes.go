package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/venuebook-api/internal/config"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	domainRepo "github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/internal/presentation/http/handler"
	"github.com/sangkips/venuebook-api/internal/presentation/http/middleware"
	"github.com/sangkips/venuebook-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Booking      *handler.BookingHandler
	Invoice      *handler.InvoiceHandler
	Hall         *handler.HallHandler
	Vendor       *handler.VendorHandler
	Customer     *handler.CustomerHandler
	Notification *handler.NotificationHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
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
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Bookings and the approval workflow
	registerBookingRoutes(protected, h, deps)

	// Invoices
	registerInvoiceRoutes(protected, h)

	// Halls
	registerHallRoutes(protected, h)

	// Vendors and their service catalogs
	registerVendorRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Notifications
	registerNotificationRoutes(protected, h)
}

func registerBookingRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	bookings := protected.Group("/bookings")
	{
		bookings.GET("", h.Booking.List)
		// Booking creation uses idempotency middleware so a retried
		// request cannot produce two bookings
		bookings.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Booking.Create)
		bookings.GET("/availability", h.Booking.CheckAvailability)
		bookings.GET("/:id", h.Booking.Get)

		// Workflow transitions
		bookings.POST("/:id/hall-approval",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleHallManager), h.Booking.HallDecision)
		bookings.POST("/:id/vendor-bookings/:vendor_booking_id/approval",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleVendor), h.Booking.VendorDecision)
		bookings.GET("/:id/vendor-approval-status", h.Booking.VendorStatus)
		bookings.POST("/:id/pay", h.Booking.Pay)
		bookings.POST("/:id/confirm",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleHallManager), h.Booking.Confirm)
		bookings.POST("/:id/cancel", h.Booking.Cancel)

		// Invoice for a booking
		bookings.GET("/:id/invoice", h.Invoice.GetByBooking)
		bookings.POST("/:id/invoice",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleHallManager), h.Invoice.Generate)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/number/:number", h.Invoice.GetByNumber)
		invoices.POST("/:id/cancel",
			middleware.RequireRole(entity.RoleAdmin), h.Invoice.Cancel)
	}
}

func registerHallRoutes(protected *gin.RouterGroup, h *Handlers) {
	halls := protected.Group("/halls")
	{
		halls.GET("", h.Hall.List)
		halls.GET("/:id", h.Hall.Get)
		halls.POST("", middleware.RequireRole(entity.RoleAdmin, entity.RoleHallManager), h.Hall.Create)
		halls.PUT("/:id", middleware.RequireRole(entity.RoleAdmin, entity.RoleHallManager), h.Hall.Update)
		halls.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Hall.Delete)
	}
}

func registerVendorRoutes(protected *gin.RouterGroup, h *Handlers) {
	vendors := protected.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.POST("", middleware.RequireRole(entity.RoleAdmin, entity.RoleVendor), h.Vendor.Create)
		vendors.PUT("/:id", middleware.RequireRole(entity.RoleAdmin, entity.RoleVendor), h.Vendor.Update)
		vendors.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Vendor.Delete)

		// Service catalog
		vendors.GET("/:id/service-items", h.Vendor.ListServiceItems)
		vendors.POST("/:id/service-items",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleVendor), h.Vendor.AddServiceItem)
		vendors.PUT("/:id/service-items/:item_id",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleVendor), h.Vendor.UpdateServiceItem)
		vendors.DELETE("/:id/service-items/:item_id",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleVendor), h.Vendor.DeleteServiceItem)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", middleware.RequireRole(entity.RoleAdmin, entity.RoleHallManager), h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Customer.Delete)
	}
}

func registerNotificationRoutes(protected *gin.RouterGroup, h *Handlers) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.POST("/:id/read", h.Notification.MarkAsRead)
	}
}
