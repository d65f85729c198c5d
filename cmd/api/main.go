package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/config"
	"github.com/milkmore/milkmore-api/internal/infrastructure/database"
	"github.com/milkmore/milkmore-api/internal/infrastructure/repository"
	"github.com/milkmore/milkmore-api/internal/presentation/http/handler"
	"github.com/milkmore/milkmore-api/internal/presentation/http/routes"
	"github.com/milkmore/milkmore-api/pkg/email"
	"github.com/milkmore/milkmore-api/pkg/oauth"
	"github.com/milkmore/milkmore-api/pkg/utils"
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
	sellerRepo := repository.NewSellerRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	otpRepo := repository.NewPasswordResetOTPRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Initialize services
	authService := service.NewAuthService(sellerRepo, otpRepo, jwtManager, emailService, googleOAuthService)
	settingsService := service.NewSettingsService(settingsRepo, cfg.Billing.FallbackRate)
	customerService := service.NewCustomerService(customerRepo)
	entryService := service.NewEntryService(entryRepo, customerRepo, summaryRepo, settingsService)
	billingService := service.NewBillingService(entryRepo, paymentRepo, customerRepo, settingsService)
	receiptService := service.NewReceiptService(entryRepo, customerRepo, cfg.Billing.BusinessName)
	summaryService := service.NewSummaryService(summaryRepo, entryRepo)
	adminService := service.NewAdminService(sellerRepo, customerRepo, entryRepo, customerService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Customer: handler.NewCustomerHandler(customerService),
		Entry:    handler.NewEntryHandler(entryService),
		Billing:  handler.NewBillingHandler(billingService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Summary:  handler.NewSummaryHandler(summaryService),
		Settings: handler.NewSettingsHandler(settingsService),
		Admin:    handler.NewAdminHandler(adminService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

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
