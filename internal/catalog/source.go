// Package catalog loads the food catalog document from wherever it is kept.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/bradykim7/mealplanner/internal/models"
)

// Source loads a fresh catalog for one calculation
type Source interface {
	// Load fetches and decodes the catalog
	Load(ctx context.Context) (models.Catalog, error)

	// Name returns the name of the source
	Name() string
}

// Format of a catalog document
type Format int

const (
	FormatJSON Format = iota
	FormatHTML
)

// DetectFormat picks the document format from a content type, falling back to the file extension.
func DetectFormat(contentType, name string) Format {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			switch mediaType {
			case "text/html", "application/xhtml+xml":
				return FormatHTML
			case "application/json":
				return FormatJSON
			}
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return FormatHTML
	}
	return FormatJSON
}

// Decode parses a catalog document in the given format
func Decode(data []byte, format Format) (models.Catalog, error) {
	if format == FormatHTML {
		return ParseHTML(data)
	}
	return ParseJSON(data)
}

// ParseJSON parses the {"breakfast":[{"Display_Name":..,"Calories":..}],..} document.
// Keys other than the three meal categories are ignored.
func ParseJSON(data []byte) (models.Catalog, error) {
	var raw map[string][]models.FoodItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog JSON: %v", models.ErrInvalidCatalog, err)
	}

	catalog := make(models.Catalog, len(models.Categories))
	for _, category := range models.Categories {
		if items, ok := raw[string(category)]; ok {
			catalog[category] = items
		}
	}
	return catalog, nil
}
