package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/config"
	"github.com/mango-abandoned/api-go/logger"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/routes"
	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/storage"
	"github.com/mango-abandoned/api-go/utils"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error loading configuration")
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})

	// Initialize storage
	store, err := storage.Open(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Error opening storage")
	}
	defer store.Close()

	clock := utils.SystemClock{}
	repos := repositories.NewRepositories(store, clock)
	svc := services.NewServices(repos, utils.UUIDGenerator{}, clock)

	// Create a new Gin router
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, svc, repos)

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("driver", cfg.Storage.Driver).
		Msg("Starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Error().Err(err).Msg("Server stopped")
	}
}
