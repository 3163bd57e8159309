package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bradykim7/mealplanner/internal/catalog"
	"github.com/bradykim7/mealplanner/internal/models"
	"github.com/bradykim7/mealplanner/internal/storage"
	"github.com/bradykim7/mealplanner/pkg/config"
	"github.com/bradykim7/mealplanner/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg *config.Config
		log *zap.Logger
	)

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Manage the meal planner food catalog",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			log = logger.New("catalogctl", "").Zap()
			return nil
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "check <file-or-url>",
			Short: "Load a catalog document and report whether it is usable",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				foods, err := loadDocument(cmd.Context(), args[0], cfg, log)
				if err != nil {
					return err
				}
				if err := foods.Validate(); err != nil {
					return err
				}
				for _, category := range models.Categories {
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d items\n", category, len(foods[category]))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "import <file-or-url>",
			Short: "Upsert a catalog document into MongoDB",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				foods, err := loadDocument(cmd.Context(), args[0], cfg, log)
				if err != nil {
					return err
				}
				return withRepository(cmd.Context(), cfg, log, func(ctx context.Context, repo *storage.FoodRepository) error {
					if err := repo.EnsureIndexes(ctx); err != nil {
						return err
					}
					n, err := repo.ImportCatalog(ctx, foods, "catalogctl")
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d items\n", n, foods.Size())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list [category]",
			Short: "List the foods stored in MongoDB",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				categories := models.Categories
				if len(args) == 1 {
					category, err := models.ParseCategory(args[0])
					if err != nil {
						return err
					}
					categories = []models.Category{category}
				}
				return withRepository(cmd.Context(), cfg, log, func(ctx context.Context, repo *storage.FoodRepository) error {
					for _, category := range categories {
						foods, err := repo.GetAllFoods(ctx, category)
						if err != nil {
							return err
						}
						fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", category)
						for _, food := range foods {
							fmt.Fprintf(cmd.OutOrStdout(), "  %-40s %8.0f kcal\n", food.Name, food.Calories)
						}
					}
					return nil
				})
			},
		},
	)

	return root
}

// loadDocument reads a catalog from a local path or an http(s) URL
func loadDocument(ctx context.Context, location string, cfg *config.Config, log *zap.Logger) (models.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var source catalog.Source = catalog.NewFileSource(location)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		source = catalog.NewHTTPSource(location, cfg.CatalogTimeout, log)
	}
	return source.Load(ctx)
}

func withRepository(ctx context.Context, cfg *config.Config, log *zap.Logger, fn func(context.Context, *storage.FoodRepository) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	db, err := storage.NewMongoDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Disconnect()

	return fn(ctx, storage.NewFoodRepository(db, log))
}
