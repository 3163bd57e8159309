package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bradykim7/mealplanner/internal/api"
	"github.com/bradykim7/mealplanner/internal/app"
	"github.com/bradykim7/mealplanner/pkg/config"
	"github.com/bradykim7/mealplanner/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger := logger.New("mealplanner-api", cfg.LogDir)
	defer logger.Sync()

	log := logger.Zap()

	// Create context that will be canceled on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	go func() {
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
		<-sc
		log.Info("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize planner", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("Error closing app", zap.Error(err))
		}
	}()

	// Serve the catalog document itself when it is a local file
	catalogFile := ""
	if cfg.CatalogSource == config.CatalogSourceFile {
		catalogFile = cfg.CatalogPath
	}

	server := api.NewServer(a.Planner, a.Catalog, catalogFile, log)
	if err := server.ListenAndServe(ctx, cfg.Port); err != nil {
		log.Error("Server error", zap.Error(err))
		return
	}

	log.Info("API server shut down successfully")
}
