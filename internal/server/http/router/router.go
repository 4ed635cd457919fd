package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/curatebox/boxops/internal/config"
	"github.com/curatebox/boxops/internal/server/http/handlers"
	"github.com/curatebox/boxops/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	if len(cfg.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	engine.Use(cors.New(corsConfig))

	customerHandler := handlers.NewCustomerHandler(facade)
	inventoryHandler := handlers.NewInventoryHandler(facade)
	fulfillmentHandler := handlers.NewFulfillmentHandler(facade)
	boxHandler := handlers.NewBoxHandler(facade)
	metricsHandler := handlers.NewMetricsHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	api.GET("/customers", customerHandler.List)
	api.POST("/customers/:id/status/toggle", customerHandler.ToggleStatus)

	api.GET("/products", inventoryHandler.List)
	api.PATCH("/products/:id/stock", inventoryHandler.UpdateStock)

	api.GET("/orders", fulfillmentHandler.List)
	api.POST("/orders/:id/advance", fulfillmentHandler.Advance)

	api.GET("/boxes", boxHandler.List)
	api.POST("/boxes", boxHandler.Submit)

	api.GET("/selection", boxHandler.Selection)
	api.POST("/selection/:productID/toggle", boxHandler.ToggleSelection)
	api.DELETE("/selection", boxHandler.ClearSelection)

	metrics := api.Group("/metrics")
	metrics.GET("/inventory", metricsHandler.Inventory)
	metrics.GET("/fulfillment", metricsHandler.Fulfillment)
	metrics.GET("/economics", metricsHandler.Economics)

	return engine
}
