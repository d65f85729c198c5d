package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/milkmore/milkmore-api/internal/config"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/presentation/http/handler"
	"github.com/milkmore/milkmore-api/internal/presentation/http/middleware"
	"github.com/milkmore/milkmore-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Customer *handler.CustomerHandler
	Entry    *handler.EntryHandler
	Billing  *handler.BillingHandler
	Receipt  *handler.ReceiptHandler
	Summary  *handler.SummaryHandler
	Settings *handler.SettingsHandler
	Admin    *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

		// Per-seller rate limiter
		rateLimiter := middleware.NewSellerRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Customers
	registerCustomerRoutes(protected, h)

	// Entries
	registerEntryRoutes(protected, h)

	// Billing
	registerBillingRoutes(protected, h)

	// Daily summaries
	registerSummaryRoutes(protected, h)

	// Admin routes
	registerAdminRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/entries", h.Entry.Monthly)
		customers.GET("/:id/summary", h.Billing.CustomerSummary)
		customers.GET("/:id/payments", h.Billing.CustomerPayments)
		customers.GET("/:id/receipt", h.Receipt.Download)
	}
}

func registerEntryRoutes(protected *gin.RouterGroup, h *Handlers) {
	entries := protected.Group("/entries")
	{
		entries.POST("", h.Entry.Add)
		entries.GET("/daily", h.Entry.Daily)
		entries.GET("/monthly", h.Entry.Monthly)
		entries.DELETE("/:id", h.Entry.Delete)
	}
}

func registerBillingRoutes(protected *gin.RouterGroup, h *Handlers) {
	payments := protected.Group("/payments")
	{
		payments.GET("", h.Billing.ListPayments)
		payments.GET("/status", h.Billing.Status)
		payments.POST("/mark-paid", h.Billing.MarkPaid)
		payments.POST("/mark-unpaid", h.Billing.MarkUnpaid)
		payments.POST("/collect", h.Billing.Collect)
		payments.GET("/summary/monthly", h.Billing.CustomerSummary)
		payments.GET("/summary/customer/:id", h.Billing.CustomerAccountSummary)
		payments.GET("/settings/rate", h.Settings.GetRate)
		payments.PUT("/settings/rate", h.Settings.UpdateRate)
	}

	receipts := protected.Group("/receipts")
	{
		receipts.GET("/monthly-receipt", h.Receipt.Download)
	}
}

func registerSummaryRoutes(protected *gin.RouterGroup, h *Handlers) {
	summaries := protected.Group("/summaries")
	{
		summaries.GET("", h.Summary.List)
		summaries.POST("", h.Summary.Create)
		summaries.GET("/latest", h.Summary.Latest)
		summaries.GET("/daily", h.Summary.ForDate)
		summaries.POST("/rebuild", h.Summary.Rebuild)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/sellers", h.Admin.ListSellers)
		admin.GET("/sellers/:id", h.Admin.GetSeller)
		admin.PUT("/sellers/:id", h.Admin.UpdateSeller)
		admin.DELETE("/sellers/:id", h.Admin.DeleteSeller)
		admin.GET("/sellers/:id/customers", h.Admin.SellerCustomers)
		admin.POST("/sellers/:id/customers", h.Admin.CreateSellerCustomer)
		admin.DELETE("/sellers/:id/customers/:customer_id", h.Admin.DeleteSellerCustomer)
		admin.GET("/customers", h.Admin.ListCustomers)
		admin.PUT("/customers/:id", h.Admin.UpdateCustomer)
		admin.DELETE("/customers/:id", h.Admin.DeleteCustomer)
		admin.GET("/entries", h.Admin.ListEntries)
		admin.PUT("/entries/:id", h.Admin.UpdateEntry)
		admin.DELETE("/entries/:id", h.Admin.DeleteEntry)
	}
}
