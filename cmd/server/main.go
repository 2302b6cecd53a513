package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pantryplan/backend/config"
	httpDelivery "github.com/pantryplan/backend/internal/delivery/http"
	"github.com/pantryplan/backend/internal/infrastructure/store"
	"github.com/pantryplan/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.Server.Environment)

	logger.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"data_path":   cfg.Data.Path,
		"cache_ttl":   cfg.Cache.TTL.String(),
	}).Info("starting pantryplan backend")

	// Initialize infrastructure dependencies
	recipeStore := store.NewFileStore(cfg.Data.Path, cfg.Cache.TTL, logger)

	// Initialize usecase layer
	recipeService := usecase.NewRecipeService(recipeStore)
	shoppingListService := usecase.NewShoppingListService(recipeStore)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recipeService, shoppingListService, recipeStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.WithField("addr", addr).Info("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// newLogger builds the process logger: JSON output in production, colored
// text everywhere else.
func newLogger(environment string) *logrus.Logger {
	logger := logrus.New()
	if environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
