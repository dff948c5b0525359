package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/retreats/api/internal/model"
)

func TestEmbeddedRepository_ListRetreats(t *testing.T) {
	t.Parallel()

	retreats, err := NewEmbeddedRepository().ListRetreats(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, retreats)

	assert.Equal(t, "Abbey of Gethsemani", retreats[0].Name)
	assert.Equal(t, "Trappist monastery", retreats[0].Type)
	assert.Equal(t, 0, retreats[0].Price)

	for _, r := range retreats {
		assert.Empty(t, r.Validate(), "seed retreat %q must validate", r.Name)
	}
}

func TestEmbeddedRepository_LegacyIncludesString(t *testing.T) {
	t.Parallel()

	retreats, err := NewEmbeddedRepository().ListRetreats(context.Background())
	require.NoError(t, err)

	var parmarth *model.Retreat
	for i := range retreats {
		if retreats[i].Name == "Parmarth Niketan" {
			parmarth = &retreats[i]
		}
	}
	require.NotNil(t, parmarth)
	assert.Equal(t, model.Includes{"Room with bath", "Sattvic meals", "Ganga Aarti", "Yoga classes"}, parmarth.Includes)
}

func TestEmbeddedRepository_LoadTaxonomy(t *testing.T) {
	t.Parallel()

	tables, err := NewEmbeddedRepository().LoadTaxonomy(context.Background())
	require.NoError(t, err)

	assert.Len(t, tables.Categories, 20)
	assert.Equal(t, model.CategoryMonastery, tables.Types["Zen monastery"])
	assert.Equal(t, model.CategoryWorkExchange, tables.Types["Work exchange"])
	assert.Equal(t, "North America", tables.Regions["US"])
	assert.Equal(t, "India", tables.Countries["IN"])
}

func TestEmbeddedRepository_SeedTypesAndCountriesAreMapped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewEmbeddedRepository()
	retreats, err := repo.ListRetreats(ctx)
	require.NoError(t, err)
	tables, err := repo.LoadTaxonomy(ctx)
	require.NoError(t, err)

	canonical := make(map[string]bool, len(tables.Categories))
	for _, c := range tables.Categories {
		canonical[c.Slug] = true
	}
	for typ, cat := range tables.Types {
		assert.True(t, canonical[cat], "type %q maps to unknown category %q", typ, cat)
	}

	for _, r := range retreats {
		assert.Contains(t, tables.Types, r.Type, "retreat %q", r.Name)
		assert.Contains(t, tables.Regions, r.Country, "retreat %q", r.Name)
		assert.Contains(t, tables.Countries, r.Country, "retreat %q", r.Name)
	}
}

func TestFileRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	dir := t.TempDir()
	retreatsPath := filepath.Join(dir, "retreats.yaml")
	require.NoError(t, os.WriteFile(retreatsPath, []byte(`
- name: Underwater Sanctuary
  location: Dahab
  country: EG
  price: 800
  nights: 5
  type: Underwater retreat
  includes: Dive gear, Breakfast
  good_for: [Nature connection]
  tags: []
`), 0o600))

	repo := NewFileRepository(retreatsPath, "")

	retreats, err := repo.ListRetreats(ctx)
	require.NoError(t, err)
	require.Len(t, retreats, 1)
	assert.Equal(t, model.Includes{"Dive gear", "Breakfast"}, retreats[0].Includes)

	// Empty taxonomy path falls back to the embedded tables
	tables, err := repo.LoadTaxonomy(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Types)
}

func TestFileRepository_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "retreats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: Typo Retreat
  location: Nowhere
  country: US
  price: 10
  nights: 1
  type: Retreat center
  goodfor: [Silence]
`), 0o600))

	_, err := NewFileRepository(path, "").ListRetreats(context.Background())
	assert.Error(t, err)
}

func TestFileRepository_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"), "").ListRetreats(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLRepository_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmbeddedRepository().ListRetreats(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
