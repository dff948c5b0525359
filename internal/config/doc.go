// Package config manages application configuration for the retreat catalog API.
//
// # Configuration Loading
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Struct defaults (defaultConfig)
//  2. An optional YAML file from CONFIG_PATH or ./config.yaml
//  3. Environment variables
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins, rate limit)
//   - CatalogConfig: retreat data source and ingestion strictness
//   - DatabaseConfig: SurrealDB connection settings for the surrealdb source
//   - LogConfig: slog level and handler format
//
// # Environment Variables
//
//	SERVER_PORT            - HTTP server port (default: 8080)
//	SERVER_ENV             - development, production or test
//	CORS_ALLOWED_ORIGINS   - comma-separated origins
//	RATE_LIMIT_ENABLED     - per-client rate limiting (default: true)
//	RATE_LIMIT_RATE, RATE_LIMIT_WINDOW, RATE_LIMIT_BURST (default: 120 per 1m, burst 20)
//	CATALOG_SOURCE         - embedded (default), file or surrealdb
//	CATALOG_PATH           - retreats YAML for the file source
//	CATALOG_TAXONOMY_PATH  - taxonomy YAML override
//	CATALOG_STRICT_TYPES   - reject types missing from the taxonomy (default: true)
//	CATALOG_RELATED_LIMIT  - related retreats per listing (default: 4)
//	DB_HOST, DB_PORT, DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD, DB_TABLE
//	LOG_LEVEL              - debug, info, warn or error
//	LOG_FORMAT             - json or text
package config
