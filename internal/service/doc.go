// Package service implements the retreat catalog: identity, taxonomy
// mapping, filtering and related-retreat ranking.
//
// # Service Pattern
//
// Services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct
//   - Load helpers (LoadXxx) read from a repository interface the package defines
//   - Load failures are returned as sentinel errors, joined when there are several
//   - Lookups never fail; not found and no results are ordinary outcomes
//
// # Immutability
//
// A CatalogService is built once from a validated collection and never
// changes. All queries return freshly allocated slices, so handlers may
// share one instance across goroutines.
//
// # Free Functions
//
// The filters (ByCategorySlug, ByCountry, ByPriceBand, SortByPrice) and
// RelatedTo operate on any []model.Retreat and are usable without a catalog.
//
// # Example Usage
//
//	repo := repository.NewEmbeddedRepository()
//	taxonomy, err := service.LoadTaxonomyService(ctx, repo)
//	catalog, err := service.LoadCatalog(ctx, repo, service.CatalogServiceConfig{
//	    Taxonomy:    taxonomy,
//	    StrictTypes: true,
//	})
//	retreat, ok := catalog.Resolve("abbey-of-gethsemani")
//	related := catalog.Related(retreat, 4)
package service
