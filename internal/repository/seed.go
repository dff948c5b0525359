package repository

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forgo/retreats/api/internal/model"
)

//go:embed seed/retreats.yaml seed/taxonomy.yaml
var seedFS embed.FS

const (
	seedRetreatsPath = "seed/retreats.yaml"
	seedTaxonomyPath = "seed/taxonomy.yaml"
)

// YAMLRepository reads the retreat collection and taxonomy tables from YAML
// documents, either the copies compiled into the binary or files on disk.
type YAMLRepository struct {
	readFile     func(name string) ([]byte, error)
	retreatsPath string
	taxonomyPath string
}

// NewEmbeddedRepository serves the catalog compiled into the binary
func NewEmbeddedRepository() *YAMLRepository {
	return &YAMLRepository{
		readFile:     seedFS.ReadFile,
		retreatsPath: seedRetreatsPath,
		taxonomyPath: seedTaxonomyPath,
	}
}

// NewFileRepository reads the catalog from files on disk. An empty
// taxonomyPath keeps the embedded taxonomy tables.
func NewFileRepository(retreatsPath, taxonomyPath string) *YAMLRepository {
	return &YAMLRepository{
		readFile:     os.ReadFile,
		retreatsPath: retreatsPath,
		taxonomyPath: taxonomyPath,
	}
}

// ListRetreats decodes every retreat in file order
func (r *YAMLRepository) ListRetreats(ctx context.Context) ([]model.Retreat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.readFile(r.retreatsPath)
	if err != nil {
		return nil, fmt.Errorf("read retreats %s: %w", r.retreatsPath, err)
	}

	var retreats []model.Retreat
	if err := decodeStrict(data, &retreats); err != nil {
		return nil, fmt.Errorf("decode retreats %s: %w", r.retreatsPath, err)
	}
	return retreats, nil
}

// LoadTaxonomy decodes the taxonomy tables
func (r *YAMLRepository) LoadTaxonomy(ctx context.Context) (*model.TaxonomyTables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, read := r.taxonomyPath, r.readFile
	if path == "" {
		path, read = seedTaxonomyPath, seedFS.ReadFile
	}

	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}

	var tables model.TaxonomyTables
	if err := decodeStrict(data, &tables); err != nil {
		return nil, fmt.Errorf("decode taxonomy %s: %w", path, err)
	}
	return &tables, nil
}

// DefaultTaxonomy returns the embedded taxonomy tables
func DefaultTaxonomy() (*model.TaxonomyTables, error) {
	return NewEmbeddedRepository().LoadTaxonomy(context.Background())
}

// decodeStrict rejects unknown keys so typos in hand-edited data fail loudly
func decodeStrict(data []byte, v interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
