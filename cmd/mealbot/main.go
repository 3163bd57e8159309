package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bradykim7/mealplanner/internal/app"
	"github.com/bradykim7/mealplanner/internal/bot"
	"github.com/bradykim7/mealplanner/internal/bot/commands"
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
	logger := logger.New("mealbot", cfg.LogDir)
	defer logger.Sync()

	log := logger.Zap()

	if err := cfg.ValidateBot(); err != nil {
		log.Fatal("Invalid bot configuration", zap.Error(err))
	}

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

	// Menu editing only makes sense for a stored catalog
	var store commands.FoodStore
	if a.Foods != nil {
		store = a.Foods
	}

	discordBot, err := bot.New(cfg, a.Planner, a.Catalog, store, log)
	if err != nil {
		log.Fatal("Failed to initialize bot", zap.Error(err))
	}

	if err := discordBot.Start(ctx); err != nil {
		log.Error("Bot error", zap.Error(err))
		return
	}

	log.Info("Discord bot shut down successfully")
}
