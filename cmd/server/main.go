package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgo/retreats/api/internal/config"
	"github.com/forgo/retreats/api/internal/handler"
	"github.com/forgo/retreats/api/internal/middleware"
	"github.com/forgo/retreats/api/internal/repository"
	"github.com/forgo/retreats/api/internal/service"
)

func main() {
	// Bootstrap logging until the configured level is known
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(newLogger(os.Stdout, cfg.Log))

	// Load the catalog
	ctx := context.Background()
	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		slog.Error("failed to load catalog",
			slog.String("source", cfg.Catalog.Source),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	slog.Info("catalog loaded",
		slog.String("source", cfg.Catalog.Source),
		slog.Int("retreats", catalog.Len()),
		slog.String("version", catalog.Version()),
	)

	// Set up router
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	handler.NewCatalogHandler(catalog).RegisterRoutes(mux)

	// Apply global middleware. Logger reads the matched route from the
	// request the mux receives, so nothing after it may copy the request.
	chain := []middleware.Middleware{
		middleware.Recovery,
		middleware.RequestID,
		middleware.Logger,
		middleware.CORS(cfg.Server.AllowedOrigins),
	}
	if rl := cfg.Server.RateLimit; rl.Enabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:   rl.Rate,
			Window: rl.Window,
			Burst:  rl.Burst,
		})
		defer limiter.Stop()
		chain = append(chain, middleware.RateLimit(limiter))
	}
	chain = append(chain, middleware.Compress)
	wrapped := middleware.Chain(mux, chain...)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// loadCatalog reads the configured source once. The database connection,
// if any, is closed as soon as the collection is in memory.
func loadCatalog(ctx context.Context, cfg *config.Config) (*service.CatalogService, error) {
	src, err := repository.OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	taxonomy, err := service.LoadTaxonomyService(ctx, src.Taxonomy)
	if err != nil {
		return nil, err
	}
	return service.LoadCatalog(ctx, src.Retreats, service.CatalogServiceConfig{
		Taxonomy:     taxonomy,
		StrictTypes:  cfg.Catalog.StrictTypes,
		RelatedLimit: cfg.Catalog.RelatedLimit,
	})
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
