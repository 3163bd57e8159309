package catalog

import (
	"context"
	"fmt"

	"github.com/bradykim7/mealplanner/pkg/config"
	"go.uber.org/zap"
)

// NewSource builds the source selected by CATALOG_SOURCE.
// store is only used by the mongo source and may be nil otherwise.
func NewSource(ctx context.Context, cfg *config.Config, store CatalogStore, log *zap.Logger) (Source, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceHTTP:
		return NewHTTPSource(cfg.CatalogURL, cfg.CatalogTimeout, log), nil
	case config.CatalogSourceFile:
		return NewFileSource(cfg.CatalogPath), nil
	case config.CatalogSourceS3:
		return NewS3Source(ctx, cfg.AWSRegion, cfg.CatalogS3Bucket, cfg.CatalogS3Key, log)
	case config.CatalogSourceMongo:
		if store == nil {
			return nil, fmt.Errorf("mongo catalog source needs a food repository")
		}
		return NewMongoSource(store), nil
	}
	return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
}
