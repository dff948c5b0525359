package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Catalog sources
const (
	SourceEmbedded  = "embedded"
	SourceFile      = "file"
	SourceSurrealDB = "surrealdb"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string          `koanf:"port"`
	Env            string          `koanf:"env"`
	ReadTimeout    time.Duration   `koanf:"read_timeout"`
	WriteTimeout   time.Duration   `koanf:"write_timeout"`
	AllowedOrigins []string        `koanf:"allowed_origins"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	Enabled bool          `koanf:"enabled"`
	Rate    int           `koanf:"rate"` // Requests per window
	Window  time.Duration `koanf:"window"`
	Burst   int           `koanf:"burst"`
}

// CatalogConfig selects where retreat data comes from and how strictly it is checked
type CatalogConfig struct {
	Source       string `koanf:"source"`        // embedded, file or surrealdb
	Path         string `koanf:"path"`          // Retreats YAML, file source only
	TaxonomyPath string `koanf:"taxonomy_path"` // Optional taxonomy override; empty uses the embedded tables
	StrictTypes  bool   `koanf:"strict_types"`  // Reject types missing from the taxonomy
	RelatedLimit int    `koanf:"related_limit"`
}

// DatabaseConfig holds SurrealDB connection settings, used by the surrealdb source
type DatabaseConfig struct {
	Host      string `koanf:"host"`
	Port      string `koanf:"port"`
	Namespace string `koanf:"namespace"`
	Database  string `koanf:"database"`
	User      string `koanf:"user"`
	Password  string `koanf:"password"`
	Table     string `koanf:"table"`
}

// LogConfig holds structured logging settings
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or text
}

// defaultConfig returns the lowest-precedence configuration layer
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			RateLimit: RateLimitConfig{
				Enabled: true,
				Rate:    120,
				Window:  time.Minute,
				Burst:   20,
			},
		},
		Catalog: CatalogConfig{
			Source:       SourceEmbedded,
			StrictTypes:  true,
			RelatedLimit: 4,
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "retreats",
			Database:  "main",
			User:      "root",
			Password:  "root",
			Table:     "retreat",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_READ_TIMEOUT and SERVER_WRITE_TIMEOUT must be positive"))
	}

	if rl := c.Server.RateLimit; rl.Enabled && (rl.Rate <= 0 || rl.Window <= 0 || rl.Burst <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_RATE, RATE_LIMIT_WINDOW and RATE_LIMIT_BURST must be positive when rate limiting is enabled"))
	}

	// Catalog validation
	switch c.Catalog.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Catalog.Path == "" {
			errs = append(errs, errors.New("CATALOG_PATH is required when CATALOG_SOURCE is 'file'"))
		}
	case SourceSurrealDB:
		if err := c.Database.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("CATALOG_SOURCE must be 'embedded', 'file', or 'surrealdb', got '%s'", c.Catalog.Source))
	}
	if c.Catalog.RelatedLimit <= 0 {
		errs = append(errs, errors.New("CATALOG_RELATED_LIMIT must be positive"))
	}

	// Log validation
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be 'json' or 'text', got '%s'", c.Log.Format))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks the SurrealDB settings needed to read the catalog table
func (d DatabaseConfig) Validate() error {
	var errs []error
	if d.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if d.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if d.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if d.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}
	if d.Table == "" {
		errs = append(errs, errors.New("DB_TABLE is required"))
	}
	return errors.Join(errs...)
}
