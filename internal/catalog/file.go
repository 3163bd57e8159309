package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/bradykim7/mealplanner/internal/models"
)

// FileSource reads the catalog from a local file
type FileSource struct {
	Path string
}

// NewFileSource creates a new file catalog source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name returns the name of the source
func (s *FileSource) Name() string {
	return "file"
}

// Load reads and decodes the catalog file
func (s *FileSource) Load(ctx context.Context) (models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrFetch, err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrFetch, err)
	}

	return Decode(data, DetectFormat("", s.Path))
}
