// Package metrics defines the Prometheus collectors for the retreat catalog API.
//
// Collectors are registered with the default registry through promauto and
// exposed by the server at /metrics:
//
//	mux.Handle("GET /metrics", promhttp.Handler())
//
// The middleware package records request metrics; the service package records
// catalog size and taxonomy fallbacks when a catalog is built.
package metrics
