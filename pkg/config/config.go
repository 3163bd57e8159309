package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog source kinds
const (
	CatalogSourceHTTP  = "http"
	CatalogSourceFile  = "file"
	CatalogSourceS3    = "s3"
	CatalogSourceMongo = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	Environment   string
	IsProduction  bool
	IsDevelopment bool
	LogDir        string

	// Discord Bot Configuration
	DiscordToken  string
	CommandPrefix string

	// HTTP API Configuration
	Port string

	// MongoDB Configuration
	MongoDBURI      string
	MongoDBDatabase string

	// Catalog Configuration
	CatalogSource   string
	CatalogURL      string
	CatalogPath     string
	CatalogS3Bucket string
	CatalogS3Key    string
	AWSRegion       string
	CatalogTimeout  time.Duration

	// Meal selection
	MaxSelectionIterations int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogDir:          getEnv("LOG_DIR", "logs"),
		DiscordToken:    getEnv("DISCORD_TOKEN", ""),
		CommandPrefix:   getEnv("COMMAND_PREFIX", "!"),
		Port:            getEnv("PORT", "8080"),
		MongoDBURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBDatabase: getEnv("MONGODB_DATABASE", ""),
		CatalogSource:   getEnv("CATALOG_SOURCE", CatalogSourceFile),
		CatalogURL:      getEnv("CATALOG_URL", ""),
		CatalogPath:     getEnv("CATALOG_PATH", "food.json"),
		CatalogS3Bucket: getEnv("CATALOG_S3_BUCKET", ""),
		CatalogS3Key:    getEnv("CATALOG_S3_KEY", "food.json"),
		AWSRegion:       getEnv("AWS_REGION", ""),
	}

	// Derived properties
	cfg.IsProduction = cfg.Environment == "production"
	cfg.IsDevelopment = !cfg.IsProduction

	if cfg.MongoDBDatabase == "" {
		cfg.MongoDBDatabase = "mealplanner"
		if cfg.IsDevelopment {
			cfg.MongoDBDatabase = "mealplanner_dev"
		}
	}

	// Parse numeric values
	timeoutSeconds, err := strconv.Atoi(getEnv("CATALOG_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	cfg.CatalogTimeout = time.Duration(timeoutSeconds) * time.Second

	cfg.MaxSelectionIterations, err = strconv.Atoi(getEnv("MAX_SELECTION_ITERATIONS", "10000"))
	if err != nil || cfg.MaxSelectionIterations <= 0 {
		cfg.MaxSelectionIterations = 10000
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured catalog source has what it needs
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceHTTP:
		if c.CatalogURL == "" {
			return fmt.Errorf("CATALOG_URL environment variable is required for the http catalog source")
		}
	case CatalogSourceFile:
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH environment variable is required for the file catalog source")
		}
	case CatalogSourceS3:
		if c.CatalogS3Bucket == "" || c.CatalogS3Key == "" {
			return fmt.Errorf("CATALOG_S3_BUCKET and CATALOG_S3_KEY are required for the s3 catalog source")
		}
	case CatalogSourceMongo:
		if c.MongoDBURI == "" {
			return fmt.Errorf("MONGODB_URI environment variable is required for the mongo catalog source")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}

	return nil
}

// ValidateBot checks the settings only the Discord bot needs
func (c *Config) ValidateBot() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
