package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/washlane/laundry-api/internal/config"
	"github.com/washlane/laundry-api/internal/presentation/http/handler"
	"github.com/washlane/laundry-api/internal/presentation/http/middleware"
	"github.com/washlane/laundry-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Draft    *handler.DraftHandler
	Order    *handler.OrderHandler
	Checkout *handler.CheckoutHandler
	Catalog  *handler.CatalogHandler
	Pricing  *handler.PricingHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
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
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/me", h.Auth.Me)

		draft := protected.Group("/draft")
		{
			draft.GET("", h.Draft.Get)
			draft.DELETE("", h.Draft.Reset)
			draft.PUT("/fields", h.Draft.SetField)
			draft.POST("/items/toggle", h.Draft.ToggleItem)
			draft.PUT("/items/quantity", h.Draft.SetQuantity)
			draft.POST("/submit", h.Draft.Submit)
			draft.POST("/load/:id", h.Draft.LoadOrder)
		}

		orders := protected.Group("/orders")
		{
			orders.GET("", h.Order.List)
			orders.POST("", h.Order.Create)
			orders.GET("/:id", h.Order.Get)
			orders.PUT("/:id", h.Order.Update)
			orders.PUT("/:id/delivery", h.Order.UpdateDelivery)
			orders.PUT("/:id/status", h.Order.SetDeliveredStatus)
			orders.DELETE("/:id", h.Order.Delete)
		}

		checkout := protected.Group("/checkout")
		{
			checkout.GET("", h.Checkout.Status)
			checkout.DELETE("", h.Checkout.Cancel)
			checkout.POST("/prepare", h.Checkout.Prepare)
			checkout.POST("/confirm", h.Checkout.Confirm)
		}

		catalog := protected.Group("/catalog/items")
		{
			catalog.GET("", h.Catalog.List)
			catalog.POST("", h.Catalog.Create)
			catalog.GET("/:id", h.Catalog.Get)
			catalog.PUT("/:id", h.Catalog.Update)
			catalog.DELETE("/:id", h.Catalog.Delete)
		}

		protected.GET("/prices", h.Pricing.List)
	}

	return router
}
