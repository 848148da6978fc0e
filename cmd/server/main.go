package main

import (
	"fmt"
	"log"

	"github.com/recipeview/backend/config"
	httpDelivery "github.com/recipeview/backend/internal/delivery/http"
	"github.com/recipeview/backend/internal/infrastructure/openai"
	"github.com/recipeview/backend/internal/infrastructure/spoonacular"
	"github.com/recipeview/backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (including an optional .env file)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting recipeview backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("model", cfg.OpenAI.Model),
	)

	// Initialize infrastructure dependencies
	extractor := spoonacular.NewClient(cfg.Spoonacular.APIKey, cfg.Spoonacular.BaseURL, logger)
	completer := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, logger)

	// Initialize usecase layer
	insights := usecase.NewInsightService(completer, logger)
	views := usecase.NewViewService(extractor, insights, logger)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(views)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// newLogger builds a production logger outside development.
func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
