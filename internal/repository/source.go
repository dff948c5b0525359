package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/retreats/api/internal/config"
	"github.com/forgo/retreats/api/internal/database"
	"github.com/forgo/retreats/api/internal/model"
)

// RetreatLister reads the retreat collection
type RetreatLister interface {
	ListRetreats(ctx context.Context) ([]model.Retreat, error)
}

// TaxonomyLoader reads the taxonomy tables
type TaxonomyLoader interface {
	LoadTaxonomy(ctx context.Context) (*model.TaxonomyTables, error)
}

// Source is the configured origin of the catalog data
type Source struct {
	Retreats RetreatLister
	Taxonomy TaxonomyLoader
	db       database.Database
}

// OpenSource selects the repositories named by cfg.Catalog.Source.
// The surrealdb source connects before returning; call Close when done.
func OpenSource(ctx context.Context, cfg *config.Config) (*Source, error) {
	switch cfg.Catalog.Source {
	case config.SourceEmbedded:
		repo := NewEmbeddedRepository()
		if cfg.Catalog.TaxonomyPath != "" {
			return &Source{Retreats: repo, Taxonomy: NewFileRepository("", cfg.Catalog.TaxonomyPath)}, nil
		}
		return &Source{Retreats: repo, Taxonomy: repo}, nil

	case config.SourceFile:
		repo := NewFileRepository(cfg.Catalog.Path, cfg.Catalog.TaxonomyPath)
		return &Source{Retreats: repo, Taxonomy: repo}, nil

	case config.SourceSurrealDB:
		db := database.NewSurrealDB(database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		})
		if err := db.Connect(ctx); err != nil {
			return nil, fmt.Errorf("open catalog source: %w", err)
		}
		slog.Info("connected to database",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Database),
			slog.String("table", cfg.Database.Table),
		)
		return &Source{
			Retreats: NewRetreatRepository(db, cfg.Database.Table),
			Taxonomy: NewFileRepository("", cfg.Catalog.TaxonomyPath),
			db:       db,
		}, nil
	}
	return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
}

// Close releases the database connection, if any
func (s *Source) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
