package catalog

import (
	"context"
	"fmt"

	"github.com/bradykim7/mealplanner/internal/models"
)

// CatalogStore is implemented by storage.FoodRepository
type CatalogStore interface {
	LoadCatalog(ctx context.Context) (models.Catalog, error)
}

// MongoSource builds the catalog from the foods collection
type MongoSource struct {
	store CatalogStore
}

// NewMongoSource creates a new MongoDB catalog source
func NewMongoSource(store CatalogStore) *MongoSource {
	return &MongoSource{store: store}
}

// Name returns the name of the source
func (s *MongoSource) Name() string {
	return "mongo"
}

// Load reads every active food grouped by category
func (s *MongoSource) Load(ctx context.Context) (models.Catalog, error) {
	catalog, err := s.store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrFetch, err)
	}
	return catalog, nil
}
