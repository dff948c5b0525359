// Package handler provides the HTTP API over the retreat catalog.
//
// Every endpoint is a read. CatalogHandler wraps the immutable
// service.CatalogService and registers its routes on a standard library mux
// using Go 1.22 method patterns.
//
// # Endpoints
//
//	GET /health                            liveness with catalog version
//	GET /v1/catalog                        version and taxonomy fallbacks
//	GET /v1/retreats                       filtered, paginated search
//	GET /v1/retreats/{slug}                one retreat by slug or name
//	GET /v1/retreats/{slug}/related        related retreats
//	GET /v1/categories[/{slug}/retreats]   categories, retreats by price
//	GET /v1/countries[/{code}/retreats]
//	GET /v1/regions[/{region}/retreats]
//	GET /v1/price-bands[/{band}/retreats]
//	GET /v1/needs[/{tag}/retreats]
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources, paginated for /v1/retreats
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// Retreats are rendered as RetreatResponse, which adds the identity slug,
// category slug, region and price band derived from the taxonomy.
//
// # Conditional Requests
//
// Catalog responses carry a strong ETag built from the catalog fingerprint.
// A matching If-None-Match header yields 304 Not Modified with no body.
//
// # Errors
//
// Unknown slugs and price bands return 404. Malformed query parameters
// return 400 with the offending field listed. An empty result is a 200
// with an empty array.
//
// # Example Usage
//
//	h := handler.NewCatalogHandler(catalog)
//	mux := http.NewServeMux()
//	h.RegisterRoutes(mux)
package handler
