package service

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/forgo/retreats/api/internal/model"
	"github.com/forgo/retreats/api/pkg/slug"
)

// TaxonomyRepository loads the lookup tables
type TaxonomyRepository interface {
	LoadTaxonomy(ctx context.Context) (*model.TaxonomyTables, error)
}

// Classifier maps a retreat onto the closed vocabularies used for grouping
type Classifier interface {
	CategorySlugOf(r *model.Retreat) string
	RegionOf(r *model.Retreat) string
}

// TaxonomyService normalizes free-text retreat types and country codes.
//
// Every lookup returns a usable string: unmapped types become the slug of the
// type label, unknown countries fall back to generic labels.
type TaxonomyService struct {
	categories []model.CategoryInfo
	canonical  map[string]model.CategoryInfo
	types      map[string]string
	regions    map[string]string
	countries  map[string]string
}

// TaxonomyServiceConfig holds configuration for the taxonomy service
type TaxonomyServiceConfig struct {
	Tables *model.TaxonomyTables
}

// NewTaxonomyService creates a taxonomy service from the given tables.
// The tables are copied; later changes to cfg.Tables have no effect.
func NewTaxonomyService(cfg TaxonomyServiceConfig) *TaxonomyService {
	tables := cfg.Tables
	if tables == nil {
		tables = &model.TaxonomyTables{}
	}

	s := &TaxonomyService{
		categories: make([]model.CategoryInfo, 0, len(tables.Categories)),
		canonical:  make(map[string]model.CategoryInfo, len(tables.Categories)),
		types:      copyTable(tables.Types),
		regions:    copyTable(tables.Regions),
		countries:  copyTable(tables.Countries),
	}
	for _, c := range tables.Categories {
		if _, dup := s.canonical[c.Slug]; dup {
			continue
		}
		s.categories = append(s.categories, c)
		s.canonical[c.Slug] = c
	}
	return s
}

// Tables returns a copy of the lookup tables the service was built from,
// with duplicate categories already dropped
func (s *TaxonomyService) Tables() *model.TaxonomyTables {
	return &model.TaxonomyTables{
		Categories: s.Categories(),
		Types:      copyTable(s.types),
		Regions:    copyTable(s.regions),
		Countries:  copyTable(s.countries),
	}
}

// LoadTaxonomyService builds the service from a repository
func LoadTaxonomyService(ctx context.Context, repo TaxonomyRepository) (*TaxonomyService, error) {
	tables, err := repo.LoadTaxonomy(ctx)
	if err != nil {
		return nil, err
	}
	return NewTaxonomyService(TaxonomyServiceConfig{Tables: tables}), nil
}

func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// CategorySlugForType maps a free-text type to a category slug.
// Unlisted types synthesize a category from the slug of the label.
func (s *TaxonomyService) CategorySlugForType(typ string) string {
	if cat, ok := s.types[typ]; ok && cat != "" {
		return cat
	}
	if synthesized := slug.Make(typ); synthesized != "" {
		return synthesized
	}
	return model.CategoryUncategorized
}

// CategorySlugOf returns the category slug of a retreat
func (s *TaxonomyService) CategorySlugOf(r *model.Retreat) string {
	return s.CategorySlugForType(r.Type)
}

// IsCanonicalType reports whether typ has an explicit table entry
func (s *TaxonomyService) IsCanonicalType(typ string) bool {
	_, ok := s.types[typ]
	return ok
}

// IsCanonicalCategory reports whether cat is one of the canonical categories
func (s *TaxonomyService) IsCanonicalCategory(cat string) bool {
	_, ok := s.canonical[cat]
	return ok
}

// RegionForCountry returns the region label for a country code
func (s *TaxonomyService) RegionForCountry(code string) string {
	if region, ok := s.regions[code]; ok && region != "" {
		return region
	}
	return model.RegionInternational
}

// RegionOf returns the region label of a retreat
func (s *TaxonomyService) RegionOf(r *model.Retreat) string {
	return s.RegionForCountry(r.Country)
}

// CountryNameOf returns the display name for a country code, echoing the
// code itself when it is not in the table
func (s *TaxonomyService) CountryNameOf(code string) string {
	if name, ok := s.countries[code]; ok && name != "" {
		return name
	}
	if code == "" {
		return model.CountryUnknown
	}
	return code
}

// IsKnownCountry reports whether code has both a region and a display name
func (s *TaxonomyService) IsKnownCountry(code string) bool {
	_, hasRegion := s.regions[code]
	_, hasName := s.countries[code]
	return hasRegion && hasName
}

// Categories returns the canonical categories in display order
func (s *TaxonomyService) Categories() []model.CategoryInfo {
	out := make([]model.CategoryInfo, len(s.categories))
	copy(out, s.categories)
	return out
}

// Category returns display information for any category slug. Synthesized
// categories get a title-cased label built from the slug.
func (s *TaxonomyService) Category(cat string) model.CategoryInfo {
	if info, ok := s.canonical[cat]; ok {
		return info
	}
	caser := cases.Title(language.English)
	return model.CategoryInfo{
		Slug:  cat,
		Label: caser.String(strings.ReplaceAll(cat, "-", " ")),
	}
}

// Regions returns the distinct region labels, sorted alphabetically
func (s *TaxonomyService) Regions() []string {
	seen := make(map[string]struct{}, len(s.regions))
	out := make([]string, 0, len(s.regions))
	for _, region := range s.regions {
		if _, ok := seen[region]; ok {
			continue
		}
		seen[region] = struct{}{}
		out = append(out, region)
	}
	slices.Sort(out)
	return out
}
