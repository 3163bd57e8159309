package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("CATALOG_TIMEOUT_SECONDS", "")
	t.Setenv("MAX_SELECTION_ITERATIONS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CatalogSource != CatalogSourceFile {
		t.Fatalf("expected file source, got %s", cfg.CatalogSource)
	}
	if cfg.CatalogPath != "food.json" {
		t.Fatalf("expected food.json, got %s", cfg.CatalogPath)
	}
	if !cfg.IsDevelopment || cfg.MongoDBDatabase != "mealplanner_dev" {
		t.Fatalf("expected development database, got %s", cfg.MongoDBDatabase)
	}
	if cfg.CatalogTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.CatalogTimeout)
	}
	if cfg.MaxSelectionIterations != 10000 {
		t.Fatalf("expected 10000 iterations, got %d", cfg.MaxSelectionIterations)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "file")
	t.Setenv("CATALOG_TIMEOUT_SECONDS", "soon")
	t.Setenv("MAX_SELECTION_ITERATIONS", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CatalogTimeout != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.CatalogTimeout)
	}
	if cfg.MaxSelectionIterations != 10000 {
		t.Fatalf("expected fallback iterations, got %d", cfg.MaxSelectionIterations)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"http with url", Config{CatalogSource: CatalogSourceHTTP, CatalogURL: "http://localhost/food.json"}, false},
		{"http without url", Config{CatalogSource: CatalogSourceHTTP}, true},
		{"file with path", Config{CatalogSource: CatalogSourceFile, CatalogPath: "food.json"}, false},
		{"s3 without bucket", Config{CatalogSource: CatalogSourceS3, CatalogS3Key: "food.json"}, true},
		{"s3 complete", Config{CatalogSource: CatalogSourceS3, CatalogS3Bucket: "meals", CatalogS3Key: "food.json"}, false},
		{"mongo", Config{CatalogSource: CatalogSourceMongo, MongoDBURI: "mongodb://localhost:27017"}, false},
		{"unknown", Config{CatalogSource: "ftp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateBot(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ValidateBot(); err == nil {
		t.Fatal("expected missing token error")
	}
	cfg.DiscordToken = "token"
	if err := cfg.ValidateBot(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
