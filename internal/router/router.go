// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/isa-atelier/storefront/internal/config"
	"github.com/isa-atelier/storefront/internal/handlers"
	"github.com/isa-atelier/storefront/internal/middleware"
	"github.com/isa-atelier/storefront/internal/services"
	"github.com/isa-atelier/storefront/internal/utils"
)

// Initialize wires the product source named by configuration and builds the
// engine. The catalog service is returned as well so the caller can trigger
// the startup load.
func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, *services.CatalogService, error) {
	var source services.ProductSource
	switch cfg.Catalog.Source {
	case "supabase":
		source = services.NewSupabaseSource(cfg.Catalog)
	case "postgres":
		source = services.NewPostgresSource(db)
	default:
		return nil, nil, fmt.Errorf("unknown catalog source: %s", cfg.Catalog.Source)
	}

	r, catalog := InitializeWithSource(cfg, source)
	return r, catalog, nil
}

// InitializeWithSource builds the engine around an explicit product source.
// Tests use this to inject a stub catalog.
func InitializeWithSource(cfg *config.Config, source services.ProductSource) (*gin.Engine, *services.CatalogService) {
	// Initialize services
	catalogService := services.NewCatalogService(source, services.NormalizeOptions{
		DefaultImage:     cfg.Catalog.DefaultImage,
		FallbackColorHex: cfg.Catalog.FallbackColor,
	})
	cartService := services.NewCartService()
	browseService := services.NewBrowseService(cfg.Store.PageSize, cfg.Store.SalePriceCeiling)
	checkoutService := services.NewCheckoutService(cartService, cfg.Store.FreeShippingOver, cfg.Store.FlatShippingRate)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, browseService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	navigationHandler := handlers.NewNavigationHandler()

	// Set JWT secret
	utils.SetJWTSecret(cfg.Session.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	v1.Use(middleware.ShopperSession(cfg.Session))
	{
		// Navigation routes
		navigation := v1.Group("/navigation")
		{
			navigation.GET("/resolve", navigationHandler.Resolve)
		}

		// Catalog routes
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/status", catalogHandler.GetStatus)
			catalog.POST("/reload", middleware.ReloadRateLimit(), catalogHandler.Reload)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.POST("/load-more", catalogHandler.LoadMore)
			products.GET("/:slug", catalogHandler.GetProduct)
		}

		// Category routes
		v1.GET("/categories", catalogHandler.GetCategories)

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PATCH("/items/:id", cartHandler.AdjustQuantity)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		{
			checkout.GET("", checkoutHandler.GetSummary)
			checkout.POST("", middleware.CheckoutRateLimit(), checkoutHandler.PlaceOrder)
		}
	}

	return r, catalogService
}
