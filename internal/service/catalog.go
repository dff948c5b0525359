package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"github.com/forgo/retreats/api/internal/metrics"
	"github.com/forgo/retreats/api/internal/model"
)

// RetreatRepository lists the retreat collection
type RetreatRepository interface {
	ListRetreats(ctx context.Context) ([]model.Retreat, error)
}

// Search defaults
const (
	DefaultPageSize = 24
	MaxPageSize     = 100
)

// CatalogService is the immutable retreat catalog.
//
// The collection is fixed at construction. Every query allocates a new
// result slice, so the service is safe for concurrent use without locking.
// Returned retreats share their tag slices with the catalog and must be
// treated as read-only.
type CatalogService struct {
	retreats     []model.Retreat
	taxonomy     *TaxonomyService
	relatedLimit int
	version      string
	report       *CatalogReport
}

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	Retreats     []model.Retreat
	Taxonomy     *TaxonomyService
	StrictTypes  bool // Reject retreat types without an explicit taxonomy entry
	RelatedLimit int  // Default related-list size; 0 means DefaultRelatedLimit
}

// NewCatalogService validates the collection and builds the catalog.
//
// Construction fails when any retreat is invalid, when two names produce the
// same identity slug, or (with StrictTypes) when a type is not in the
// taxonomy. Unknown country codes only produce a warning.
func NewCatalogService(cfg CatalogServiceConfig) (*CatalogService, error) {
	if cfg.Taxonomy == nil {
		return nil, ErrNoTaxonomy
	}

	report := InspectCatalog(cfg.Retreats, cfg.Taxonomy)
	if err := report.Err(cfg.StrictTypes); err != nil {
		return nil, err
	}
	for _, t := range report.UnmappedTypes {
		slog.Warn("retreat type not in taxonomy, synthesizing category",
			slog.String("type", t),
			slog.String("category", cfg.Taxonomy.CategorySlugForType(t)),
		)
		metrics.RecordTaxonomyFallback("type")
	}
	for _, code := range report.UnknownCountries {
		slog.Warn("country code not in taxonomy, using fallback labels",
			slog.String("country", code),
		)
		metrics.RecordTaxonomyFallback("country")
	}

	retreats := slices.Clone(cfg.Retreats)
	if retreats == nil {
		retreats = make([]model.Retreat, 0)
	}

	version, err := Fingerprint(retreats, cfg.Taxonomy.Tables())
	if err != nil {
		return nil, fmt.Errorf("fingerprint catalog: %w", err)
	}

	limit := cfg.RelatedLimit
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	return &CatalogService{
		retreats:     retreats,
		taxonomy:     cfg.Taxonomy,
		relatedLimit: limit,
		version:      version,
		report:       report,
	}, nil
}

// LoadCatalog reads the collection from a repository and builds the catalog
func LoadCatalog(ctx context.Context, repo RetreatRepository, cfg CatalogServiceConfig) (*CatalogService, error) {
	start := time.Now()

	retreats, err := repo.ListRetreats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load retreats: %w", err)
	}
	cfg.Retreats = retreats

	svc, err := NewCatalogService(cfg)
	if err != nil {
		return nil, err
	}
	metrics.RecordCatalogLoad(svc.Len(), time.Since(start))
	return svc, nil
}

// Fingerprint hashes the JSON form of a collection together with the
// taxonomy tables, since both shape every derived field
func Fingerprint(rs []model.Retreat, tables *model.TaxonomyTables) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	for _, v := range []interface{}{rs, tables} {
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		_, _ = h.Write(data)
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Version identifies the catalog contents; it changes whenever any retreat
// or taxonomy entry does
func (s *CatalogService) Version() string {
	return s.version
}

// Report returns the load report (fallbacks that did not block loading)
func (s *CatalogService) Report() CatalogReport {
	return *s.report
}

// Taxonomy returns the taxonomy the catalog classifies with
func (s *CatalogService) Taxonomy() *TaxonomyService {
	return s.taxonomy
}

// Len returns the number of retreats
func (s *CatalogService) Len() int {
	return len(s.retreats)
}

// All returns the full collection in its original order
func (s *CatalogService) All() []model.Retreat {
	return slices.Clone(s.retreats)
}

// Resolve finds the retreat whose identity slug equals id.
// A false result is the normal not-found outcome.
func (s *CatalogService) Resolve(id string) (model.Retreat, bool) {
	return resolveIn(s.retreats, id)
}

// CategorySlugOf returns the category slug of a retreat
func (s *CatalogService) CategorySlugOf(r *model.Retreat) string {
	return s.taxonomy.CategorySlugOf(r)
}

// RegionOf returns the region label of a retreat
func (s *CatalogService) RegionOf(r *model.Retreat) string {
	return s.taxonomy.RegionOf(r)
}

// ByCategorySlug returns the retreats filed under a category
func (s *CatalogService) ByCategorySlug(cat string) []model.Retreat {
	return ByCategorySlug(s.retreats, cat, s.taxonomy)
}

// ByCountry returns the retreats in a country
func (s *CatalogService) ByCountry(code string) []model.Retreat {
	return ByCountry(s.retreats, code)
}

// ByRegion returns the retreats in a region
func (s *CatalogService) ByRegion(region string) []model.Retreat {
	return ByRegion(s.retreats, region, s.taxonomy)
}

// ByPriceBand returns the retreats priced within [minPrice, maxPrice]
func (s *CatalogService) ByPriceBand(minPrice, maxPrice int) []model.Retreat {
	return ByPriceBand(s.retreats, minPrice, maxPrice)
}

// ByBand returns the retreats inside a named standard band
func (s *CatalogService) ByBand(bandSlug string) ([]model.Retreat, bool) {
	band, ok := model.GetPriceBand(bandSlug)
	if !ok {
		return nil, false
	}
	return ByBand(s.retreats, band), true
}

// ByNeed returns the retreats good for a given need
func (s *CatalogService) ByNeed(tag string) []model.Retreat {
	return ByNeed(s.retreats, tag)
}

// Related ranks retreats similar to focal. A limit of zero or less uses the
// configured default.
func (s *CatalogService) Related(focal model.Retreat, limit int) []model.Retreat {
	if limit <= 0 {
		limit = s.relatedLimit
	}
	return RelatedTo(focal, s.retreats, limit, s.taxonomy)
}

// RelatedBySlug resolves id and ranks its related retreats
func (s *CatalogService) RelatedBySlug(id string, limit int) ([]model.Retreat, bool) {
	focal, ok := s.Resolve(id)
	if !ok {
		return nil, false
	}
	return s.Related(focal, limit), true
}

// RetreatFilter is the composite search used by listing pages
type RetreatFilter struct {
	Category string `json:"category,omitempty"`
	Country  string `json:"country,omitempty"`
	Region   string `json:"region,omitempty"`
	Need     string `json:"need,omitempty"`

	MinPrice *int `json:"min_price,omitempty"`
	MaxPrice *int `json:"max_price,omitempty"`
	PaidOnly bool `json:"paid_only,omitempty"` // Exclude free listings from price ranges

	// Flags only filter when true
	Verified     bool `json:"verified,omitempty"`
	CommunityRun bool `json:"community_run,omitempty"`
	WorkExchange bool `json:"work_exchange,omitempty"`
	Scholarship  bool `json:"scholarship,omitempty"`
	SlidingScale bool `json:"sliding_scale,omitempty"`

	SortByPrice bool `json:"sort_by_price,omitempty"`

	Limit  int `json:"limit,omitempty"`  // Default: 24, max: 100
	Offset int `json:"offset,omitempty"` // Pagination
}

// RetreatPage is one page of search results
type RetreatPage struct {
	Retreats   []model.Retreat `json:"retreats"`
	TotalCount int             `json:"total_count"`
	HasMore    bool            `json:"has_more"`
	Offset     int             `json:"offset"`
	Limit      int             `json:"limit"`
}

func (f *RetreatFilter) matches(r *model.Retreat, c Classifier) bool {
	switch {
	case f.Category != "" && c.CategorySlugOf(r) != f.Category,
		f.Country != "" && r.Country != f.Country,
		f.Region != "" && c.RegionOf(r) != f.Region,
		f.Need != "" && !r.SharesNeed(f.Need),
		f.MinPrice != nil && r.Price < *f.MinPrice,
		f.MaxPrice != nil && r.Price > *f.MaxPrice,
		f.PaidOnly && r.IsFree(),
		f.Verified && !r.Verified,
		f.CommunityRun && !r.CommunityRun,
		f.WorkExchange && !r.WorkExchange,
		f.Scholarship && !r.Scholarship,
		f.SlidingScale && !r.SlidingScale:
		return false
	}
	return true
}

// Search applies a composite filter and returns one page of results
func (s *CatalogService) Search(filter RetreatFilter) RetreatPage {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	matched := Select(s.retreats, func(r *model.Retreat) bool {
		return filter.matches(r, s.taxonomy)
	})
	if filter.SortByPrice {
		matched = SortByPrice(matched)
	}

	page, hasMore := Paginate(matched, filter.Offset, filter.Limit)
	return RetreatPage{
		Retreats:   page,
		TotalCount: len(matched),
		HasMore:    hasMore,
		Offset:     filter.Offset,
		Limit:      filter.Limit,
	}
}

// CategorySummaries lists every canonical category in display order with its
// retreat count, followed by any categories synthesized from unmapped types
func (s *CatalogService) CategorySummaries() []model.CategorySummary {
	counts := make(map[string]int)
	var synthesized []string
	for i := range s.retreats {
		cat := s.taxonomy.CategorySlugOf(&s.retreats[i])
		if _, seen := counts[cat]; !seen && !s.taxonomy.IsCanonicalCategory(cat) {
			synthesized = append(synthesized, cat)
		}
		counts[cat]++
	}

	out := make([]model.CategorySummary, 0, len(counts))
	for _, info := range s.taxonomy.Categories() {
		out = append(out, model.CategorySummary{CategoryInfo: info, Canonical: true, Count: counts[info.Slug]})
	}
	slices.Sort(synthesized)
	for _, cat := range synthesized {
		out = append(out, model.CategorySummary{CategoryInfo: s.taxonomy.Category(cat), Count: counts[cat]})
	}
	return out
}

// CountrySummaries lists the countries present in the catalog, by display name
func (s *CatalogService) CountrySummaries() []model.CountrySummary {
	index := make(map[string]int)
	out := make([]model.CountrySummary, 0)
	for i := range s.retreats {
		code := s.retreats[i].Country
		if pos, ok := index[code]; ok {
			out[pos].Count++
			continue
		}
		index[code] = len(out)
		out = append(out, model.CountrySummary{
			Code:   code,
			Name:   s.taxonomy.CountryNameOf(code),
			Region: s.taxonomy.RegionForCountry(code),
			Count:  1,
		})
	}
	slices.SortStableFunc(out, func(a, b model.CountrySummary) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return out
}

// RegionSummaries counts retreats per region label, alphabetically.
// Only regions with at least one retreat are listed.
func (s *CatalogService) RegionSummaries() []RegionSummary {
	counts := make(map[string]int)
	for i := range s.retreats {
		counts[s.taxonomy.RegionOf(&s.retreats[i])]++
	}
	out := make([]RegionSummary, 0, len(counts))
	for region, n := range counts {
		out = append(out, RegionSummary{Region: region, Count: n})
	}
	slices.SortFunc(out, func(a, b RegionSummary) int {
		return strings.Compare(a.Region, b.Region)
	})
	return out
}

// RegionSummary is a region label with the number of retreats in it
type RegionSummary struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// NeedSummaries counts retreats per goodFor tag, most common first
func (s *CatalogService) NeedSummaries() []NeedSummary {
	index := make(map[string]int)
	out := make([]NeedSummary, 0)
	for i := range s.retreats {
		seen := make(map[string]struct{}, len(s.retreats[i].GoodFor))
		for _, tag := range s.retreats[i].GoodFor {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			if pos, ok := index[tag]; ok {
				out[pos].Count++
				continue
			}
			index[tag] = len(out)
			out = append(out, NeedSummary{Tag: tag, Count: 1})
		}
	}
	slices.SortStableFunc(out, func(a, b NeedSummary) int {
		return b.Count - a.Count
	})
	return out
}

// NeedSummary is a goodFor tag with the number of retreats listing it
type NeedSummary struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
