package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/washlane/laundry-api/internal/application/service"
	"github.com/washlane/laundry-api/internal/config"
	"github.com/washlane/laundry-api/internal/domain/pricing"
	"github.com/washlane/laundry-api/internal/infrastructure/database"
	"github.com/washlane/laundry-api/internal/infrastructure/repository"
	"github.com/washlane/laundry-api/internal/presentation/http/handler"
	"github.com/washlane/laundry-api/internal/presentation/http/routes"
	"github.com/washlane/laundry-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logger.Warn("Failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	orderLedger, err := repository.NewOrderLedger(cfg.Ledger.Path, cfg.Ledger.Seed)
	if err != nil {
		logger.Fatal("Failed to open order ledger", zap.Error(err))
	}

	catalogStore, err := repository.NewCatalogStore(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to open catalog store", zap.Error(err))
	}

	// Initialize services
	priceList := pricing.New(cfg.Pricing.Prices)
	authService := service.NewAuthService(userRepo, jwtManager)
	orderService := service.NewOrderService(orderLedger, cfg.Checkout.ClearPaymentOnPending)
	draftService := service.NewDraftService(priceList, orderService, cfg.Draft.RequiredFields)
	checkoutService := service.NewCheckoutService(orderService)
	catalogService := service.NewCatalogService(catalogStore)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Draft:    handler.NewDraftHandler(draftService),
		Order:    handler.NewOrderHandler(orderService, draftService, checkoutService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Pricing:  handler.NewPricingHandler(priceList),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     logger,
	})

	logger.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", cfg.App.Port),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
