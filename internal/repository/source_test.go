package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/retreats/api/internal/config"
)

func TestOpenSource_Embedded(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.SourceEmbedded}}

	src, err := OpenSource(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, src.Close()) }()

	retreats, err := src.Retreats.ListRetreats(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, retreats)

	tables, err := src.Taxonomy.LoadTaxonomy(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Categories)
}

func TestOpenSource_FileWithEmbeddedTaxonomy(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "retreats.yaml")
	content := `
- name: Hillside Hermitage
  location: Asheville, North Carolina
  country: US
  price: 250
  nights: 2
  type: Retreat center
  includes: [Lodging]
  good_for: [Rest]
  tags: [quiet]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.SourceFile, Path: path}}
	src, err := OpenSource(context.Background(), cfg)
	require.NoError(t, err)

	retreats, err := src.Retreats.ListRetreats(context.Background())
	require.NoError(t, err)
	require.Len(t, retreats, 1)
	assert.Equal(t, "Hillside Hermitage", retreats[0].Name)

	tables, err := src.Taxonomy.LoadTaxonomy(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Types)
	assert.NoError(t, src.Close())
}

func TestOpenSource_EmbeddedWithTaxonomyOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	content := `
categories:
  - slug: retreat
    label: Retreats
types:
  Retreat center: retreat
regions:
  US: North America
countries:
  US: United States
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.SourceEmbedded, TaxonomyPath: path}}
	src, err := OpenSource(context.Background(), cfg)
	require.NoError(t, err)

	tables, err := src.Taxonomy.LoadTaxonomy(context.Background())
	require.NoError(t, err)
	require.Len(t, tables.Categories, 1)
	assert.Equal(t, "Retreats", tables.Categories[0].Label)
}

func TestOpenSource_UnknownSource(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{Catalog: config.CatalogConfig{Source: "ftp"}}

	_, err := OpenSource(context.Background(), cfg)
	assert.ErrorContains(t, err, "ftp")
}
