// Package app wires configuration into the planner and its catalog source.
package app

import (
	"context"
	"fmt"

	"github.com/bradykim7/mealplanner/internal/catalog"
	"github.com/bradykim7/mealplanner/internal/planner"
	"github.com/bradykim7/mealplanner/internal/storage"
	"github.com/bradykim7/mealplanner/pkg/config"
	"go.uber.org/zap"
)

// App holds the long-lived pieces shared by the binaries
type App struct {
	Config  *config.Config
	Planner *planner.Planner
	Catalog catalog.Source

	// Foods is nil unless the catalog lives in MongoDB
	Foods *storage.FoodRepository

	db  *storage.MongoDB
	log *zap.Logger
}

// New builds the catalog source named in cfg and a planner on top of it
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{Config: cfg, log: log}

	var store catalog.CatalogStore
	if cfg.CatalogSource == config.CatalogSourceMongo {
		db, err := storage.NewMongoDB(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.Foods = storage.NewFoodRepository(db, log)
		if err := a.Foods.EnsureIndexes(ctx); err != nil {
			log.Warn("Failed to ensure food indexes", zap.Error(err))
		}
		store = a.Foods
	}

	source, err := catalog.NewSource(ctx, cfg, store, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create catalog source: %w", err)
	}

	a.Catalog = source
	a.Planner = planner.New(source, cfg.MaxSelectionIterations, log)

	log.Info("Catalog source ready", zap.String("source", source.Name()))
	return a, nil
}

// Close releases the MongoDB connection if one was opened
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Disconnect(); err != nil {
		return fmt.Errorf("MongoDB disconnect: %w", err)
	}
	return nil
}
