package handler

import (
	"net/http"
	"net/url"

	"github.com/forgo/retreats/api/internal/model"
	"github.com/forgo/retreats/api/internal/service"
)

// CatalogHandler serves the read-only retreat catalog
type CatalogHandler struct {
	catalog *service.CatalogService
	etag    string
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		etag:    `"` + catalog.Version() + `"`,
	}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /v1/catalog", h.conditional(h.GetCatalogInfo))

	// Retreats
	mux.Handle("GET /v1/retreats", h.conditional(h.ListRetreats))
	mux.Handle("GET /v1/retreats/{slug}", h.conditional(h.GetRetreat))
	mux.Handle("GET /v1/retreats/{slug}/related", h.conditional(h.GetRelated))

	// Browse indexes
	mux.Handle("GET /v1/categories", h.conditional(h.ListCategories))
	mux.Handle("GET /v1/categories/{slug}/retreats", h.conditional(h.ListCategoryRetreats))
	mux.Handle("GET /v1/countries", h.conditional(h.ListCountries))
	mux.Handle("GET /v1/countries/{code}/retreats", h.conditional(h.ListCountryRetreats))
	mux.Handle("GET /v1/regions", h.conditional(h.ListRegions))
	mux.Handle("GET /v1/regions/{region}/retreats", h.conditional(h.ListRegionRetreats))
	mux.Handle("GET /v1/price-bands", h.conditional(h.ListPriceBands))
	mux.Handle("GET /v1/price-bands/{band}/retreats", h.conditional(h.ListBandRetreats))
	mux.Handle("GET /v1/needs", h.conditional(h.ListNeeds))
	mux.Handle("GET /v1/needs/{tag}/retreats", h.conditional(h.ListNeedRetreats))
}

// RetreatResponse is a retreat with its derived catalog fields
type RetreatResponse struct {
	model.Retreat
	Slug      string `json:"slug"`
	Category  string `json:"category"`
	Region    string `json:"region"`
	PriceBand string `json:"price_band"`
}

// PriceBandSummary is a standard band with its retreat count
type PriceBandSummary struct {
	model.PriceBand
	Count int `json:"count"`
}

// HealthResponse reports the loaded catalog
type HealthResponse struct {
	Status   string `json:"status"`
	Retreats int    `json:"retreats"`
	Version  string `json:"version"`
}

// Health handles GET /health
func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Retreats: h.catalog.Len(),
		Version:  h.catalog.Version(),
	})
}

// CatalogInfo describes the loaded catalog and its taxonomy fallbacks
type CatalogInfo struct {
	Version          string   `json:"version"`
	Retreats         int      `json:"retreats"`
	UnmappedTypes    []string `json:"unmapped_types"`
	UnknownCountries []string `json:"unknown_countries"`
}

// GetCatalogInfo handles GET /v1/catalog
func (h *CatalogHandler) GetCatalogInfo(w http.ResponseWriter, r *http.Request) {
	report := h.catalog.Report()
	info := CatalogInfo{
		Version:          h.catalog.Version(),
		Retreats:         h.catalog.Len(),
		UnmappedTypes:    report.UnmappedTypes,
		UnknownCountries: report.UnknownCountries,
	}
	if info.UnmappedTypes == nil {
		info.UnmappedTypes = []string{}
	}
	if info.UnknownCountries == nil {
		info.UnknownCountries = []string{}
	}
	WriteData(w, http.StatusOK, info, map[string]string{
		"self":       "/v1/catalog",
		"retreats":   "/v1/retreats",
		"categories": "/v1/categories",
	})
}

// ListRetreats handles GET /v1/retreats - filtered, paginated listing
func (h *CatalogHandler) ListRetreats(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRetreatFilter(r)
	if err != nil {
		WriteError(w, MapError(err))
		return
	}

	page := h.catalog.Search(filter)
	WriteCollection(w, http.StatusOK, h.toResponses(page.Retreats), &PaginationInfo{
		Offset:     page.Offset,
		Limit:      page.Limit,
		TotalCount: page.TotalCount,
		HasMore:    page.HasMore,
	}, map[string]string{
		"self": r.URL.RequestURI(),
	})
}

// GetRetreat handles GET /v1/retreats/{slug}
func (h *CatalogHandler) GetRetreat(w http.ResponseWriter, r *http.Request) {
	retreat, ok := h.catalog.Resolve(r.PathValue("slug"))
	if !ok {
		WriteError(w, model.NewNotFoundError("retreat"))
		return
	}

	resp := h.toResponse(retreat)
	WriteData(w, http.StatusOK, resp, map[string]string{
		"self":     "/v1/retreats/" + resp.Slug,
		"related":  "/v1/retreats/" + resp.Slug + "/related",
		"category": "/v1/categories/" + resp.Category + "/retreats",
		"country":  "/v1/countries/" + resp.Country + "/retreats",
	})
}

// GetRelated handles GET /v1/retreats/{slug}/related?limit=n
func (h *CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	limit, err := parseInt("limit", r.URL.Query().Get("limit"), 1)
	if err != nil {
		WriteError(w, MapError(err))
		return
	}
	n := 0
	if limit != nil {
		n = min(*limit, service.MaxPageSize)
	}

	slug := r.PathValue("slug")
	related, ok := h.catalog.RelatedBySlug(slug, n)
	if !ok {
		WriteError(w, model.NewNotFoundError("retreat"))
		return
	}

	WriteCollection(w, http.StatusOK, h.toResponses(related), nil, map[string]string{
		"self":    r.URL.RequestURI(),
		"retreat": "/v1/retreats/" + slug,
	})
}

// ListCategories handles GET /v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteCollection(w, http.StatusOK, h.catalog.CategorySummaries(), nil, map[string]string{
		"self": "/v1/categories",
	})
}

// ListCategoryRetreats handles GET /v1/categories/{slug}/retreats, cheapest first
func (h *CatalogHandler) ListCategoryRetreats(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	retreats := service.SortByPrice(h.catalog.ByCategorySlug(slug))
	WriteCollection(w, http.StatusOK, h.toResponses(retreats), nil, map[string]string{
		"self": "/v1/categories/" + slug + "/retreats",
	})
}

// ListCountries handles GET /v1/countries
func (h *CatalogHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	WriteCollection(w, http.StatusOK, h.catalog.CountrySummaries(), nil, map[string]string{
		"self": "/v1/countries",
	})
}

// ListCountryRetreats handles GET /v1/countries/{code}/retreats
func (h *CatalogHandler) ListCountryRetreats(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	WriteCollection(w, http.StatusOK, h.toResponses(h.catalog.ByCountry(code)), nil, map[string]string{
		"self": "/v1/countries/" + code + "/retreats",
	})
}

// ListRegions handles GET /v1/regions
func (h *CatalogHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	WriteCollection(w, http.StatusOK, h.catalog.RegionSummaries(), nil, map[string]string{
		"self": "/v1/regions",
	})
}

// ListRegionRetreats handles GET /v1/regions/{region}/retreats
func (h *CatalogHandler) ListRegionRetreats(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")
	WriteCollection(w, http.StatusOK, h.toResponses(h.catalog.ByRegion(region)), nil, map[string]string{
		"self": "/v1/regions/" + url.PathEscape(region) + "/retreats",
	})
}

// ListPriceBands handles GET /v1/price-bands
func (h *CatalogHandler) ListPriceBands(w http.ResponseWriter, r *http.Request) {
	bands := model.GetPriceBands()
	out := make([]PriceBandSummary, 0, len(bands))
	for _, b := range bands {
		retreats, _ := h.catalog.ByBand(b.Slug)
		out = append(out, PriceBandSummary{PriceBand: b, Count: len(retreats)})
	}
	WriteCollection(w, http.StatusOK, out, nil, map[string]string{
		"self": "/v1/price-bands",
	})
}

// ListBandRetreats handles GET /v1/price-bands/{band}/retreats
func (h *CatalogHandler) ListBandRetreats(w http.ResponseWriter, r *http.Request) {
	band := r.PathValue("band")
	retreats, ok := h.catalog.ByBand(band)
	if !ok {
		WriteError(w, model.NewNotFoundError("price band"))
		return
	}
	WriteCollection(w, http.StatusOK, h.toResponses(retreats), nil, map[string]string{
		"self": "/v1/price-bands/" + band + "/retreats",
	})
}

// ListNeeds handles GET /v1/needs
func (h *CatalogHandler) ListNeeds(w http.ResponseWriter, r *http.Request) {
	WriteCollection(w, http.StatusOK, h.catalog.NeedSummaries(), nil, map[string]string{
		"self": "/v1/needs",
	})
}

// ListNeedRetreats handles GET /v1/needs/{tag}/retreats
func (h *CatalogHandler) ListNeedRetreats(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	WriteCollection(w, http.StatusOK, h.toResponses(h.catalog.ByNeed(tag)), nil, map[string]string{
		"self": "/v1/needs/" + tag + "/retreats",
	})
}

func (h *CatalogHandler) toResponse(r model.Retreat) RetreatResponse {
	resp := RetreatResponse{
		Retreat:  r,
		Slug:     service.IdentityOf(&r),
		Category: h.catalog.CategorySlugOf(&r),
		Region:   h.catalog.RegionOf(&r),
	}
	if band, ok := model.BandOf(r.Price); ok {
		resp.PriceBand = band.Slug
	}
	return resp
}

func (h *CatalogHandler) toResponses(rs []model.Retreat) []RetreatResponse {
	out := make([]RetreatResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, h.toResponse(r))
	}
	return out
}

// parseRetreatFilter maps query parameters onto a search filter
func parseRetreatFilter(r *http.Request) (service.RetreatFilter, error) {
	q := r.URL.Query()
	filter := service.RetreatFilter{
		Category: q.Get("category"),
		Country:  q.Get("country"),
		Region:   q.Get("region"),
		Need:     q.Get("need"),
	}

	var err error
	if filter.MinPrice, err = parseInt("min_price", q.Get("min_price"), 0); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parseInt("max_price", q.Get("max_price"), 0); err != nil {
		return filter, err
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, &parameterError{Name: "min_price", Value: q.Get("min_price"), Reason: "must not exceed max_price"}
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"paid_only", &filter.PaidOnly},
		{"verified", &filter.Verified},
		{"community_run", &filter.CommunityRun},
		{"work_exchange", &filter.WorkExchange},
		{"scholarship", &filter.Scholarship},
		{"sliding_scale", &filter.SlidingScale},
	}
	for _, f := range flags {
		if *f.dst, err = parseBool(f.name, q.Get(f.name)); err != nil {
			return filter, err
		}
	}

	switch sort := q.Get("sort"); sort {
	case "":
	case "price":
		filter.SortByPrice = true
	default:
		return filter, &parameterError{Name: "sort", Value: sort, Reason: "must be price"}
	}

	limit, err := parseInt("limit", q.Get("limit"), 1)
	if err != nil {
		return filter, err
	}
	if limit != nil {
		filter.Limit = *limit
	}
	offset, err := parseInt("offset", q.Get("offset"), 0)
	if err != nil {
		return filter, err
	}
	if offset != nil {
		filter.Offset = *offset
	}
	return filter, nil
}
