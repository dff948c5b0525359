package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/retreats/api/internal/config"
)

const brokenCatalog = `
- name: Quiet Hills
  location: Asheville, North Carolina
  country: US
  price: 250
  nights: 2
  type: Retreat center
  includes: [Lodging]
  good_for: [Rest]
  tags: [quiet]
- name: Quiet Hills!
  location: Asheville, North Carolina
  country: US
  price: 300
  nights: 2
  type: Treehouse retreat
  includes: [Lodging]
  good_for: [Rest]
  tags: [quiet]
- name: Nowhere Stay
  location: ""
  country: ZZ
  price: 100
  nights: 0
  type: Retreat center
  includes: [Lodging]
  good_for: [Rest]
  tags: [quiet]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "retreats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheck_EmbeddedCatalogPasses(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.SourceEmbedded, StrictTypes: true}}
	result, err := check(context.Background(), cfg)
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Positive(t, result.Report.Total)
	assert.Empty(t, result.Report.Invalid)
	assert.Empty(t, result.Report.Collisions)
}

func TestCheck_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Catalog: config.CatalogConfig{
		Source:      config.SourceFile,
		Path:        writeCatalog(t, brokenCatalog),
		StrictTypes: true,
	}}
	result, err := check(context.Background(), cfg)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Equal(t, 3, result.Report.Total)
	require.Len(t, result.Report.Invalid, 1)
	assert.Equal(t, 2, result.Report.Invalid[0].Index)
	require.Len(t, result.Report.Collisions, 1)
	assert.Equal(t, "quiet-hills", result.Report.Collisions[0].Slug)
	assert.Equal(t, []string{"Treehouse retreat"}, result.Report.UnmappedTypes)
	assert.Contains(t, result.Report.UnknownCountries, "ZZ")
}

func TestCheck_MissingFile(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.SourceFile, Path: "/nonexistent/retreats.yaml"}}
	_, err := check(context.Background(), cfg)
	assert.Error(t, err)
}

func TestPrintReport(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Catalog: config.CatalogConfig{
		Source:      config.SourceFile,
		Path:        writeCatalog(t, brokenCatalog),
		StrictTypes: true,
	}}
	result, err := check(context.Background(), cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	printReport(&out, result)

	text := out.String()
	assert.Contains(t, text, "Retreats:  3")
	assert.Contains(t, text, `INVALID   #2 "Nowhere Stay"`)
	assert.Contains(t, text, "COLLISION quiet-hills")
	assert.Contains(t, text, `UNMAPPED  type "Treehouse retreat"`)
	assert.Contains(t, text, `WARN      unknown country "ZZ"`)
	assert.Contains(t, text, "FAILED")
}

func TestPrintReport_LenientTypesOnlyWarn(t *testing.T) {
	t.Parallel()

	content := `
- name: Canopy Stay
  location: Monteverde, Puntarenas
  country: US
  price: 300
  nights: 2
  type: Treehouse retreat
  includes: [Lodging]
  good_for: [Rest]
  tags: [quiet]
`
	cfg := &config.Config{Catalog: config.CatalogConfig{
		Source: config.SourceFile,
		Path:   writeCatalog(t, content),
	}}
	result, err := check(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, result.OK)

	var out bytes.Buffer
	printReport(&out, result)
	assert.Contains(t, out.String(), `WARN      unmapped type "Treehouse retreat"`)
	assert.Contains(t, out.String(), "OK")
}
