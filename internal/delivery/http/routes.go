package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pantryplan/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *logrus.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.PerIP > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", handler.ListRecipes)
			recipes.GET("/:identifier", handler.GetRecipe)
			recipes.GET("/:identifier/scale/:servings", handler.ScaleRecipe)
		}

		v1.POST("/shopping-list", handler.GenerateShoppingList)

		cache := v1.Group("/cache")
		{
			cache.GET("/status", handler.CacheStatus)
			cache.POST("/clear", handler.CacheClear)
		}
	}

	return router
}
