package main

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hardcoretiff/adspot-wizard/docs"
	"github.com/hardcoretiff/adspot-wizard/internal/config"
	"github.com/hardcoretiff/adspot-wizard/internal/handler"
	"github.com/hardcoretiff/adspot-wizard/internal/logger"
	"github.com/hardcoretiff/adspot-wizard/internal/platform"
	"github.com/hardcoretiff/adspot-wizard/internal/progress"
	"github.com/hardcoretiff/adspot-wizard/internal/service"
	"github.com/hardcoretiff/adspot-wizard/internal/wizard"
)

// @title AdSpot Onboarding Service API
// @version 1.0
// @description API for running the AdSpot onboarding wizard and provisioning customer workspaces
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting onboarding service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	// Initialize platform client
	platformClient := platform.NewClient(cfg.Platform, log)

	// Initialize onboarding service
	onboardingService := service.NewOnboardingService(platformClient, log)

	// Initialize wizard session store and progress simulation
	sessions := wizard.NewStore()
	simulation := progress.NewSimulation(progress.DefaultTimings(), log)

	// Initialize handler
	h := handler.NewHandler(onboardingService, sessions, simulation, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
