package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retreats_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "retreats_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	APINotModified = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "retreats_api_not_modified_total",
			Help: "Requests answered with 304 from a matching ETag",
		},
	)

	APIRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "retreats_api_rate_limited_total",
			Help: "Requests rejected with 429 by the per-client rate limiter",
		},
	)

	// Catalog Metrics
	CatalogRetreats = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "retreats_catalog_retreats",
			Help: "Number of retreats in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retreats_catalog_load_duration_seconds",
			Help:    "Time to read and validate the catalog",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Fallbacks are counted per distinct value at load time
	TaxonomyFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retreats_taxonomy_fallback_total",
			Help: "Types or country codes missing from the taxonomy",
		},
		[]string{"kind"}, // "type", "country"
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, route string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	if statusCode == 304 {
		APINotModified.Inc()
	}
}

// RecordRateLimited counts a request rejected by the rate limiter
func RecordRateLimited() {
	APIRateLimited.Inc()
}

// RecordCatalogLoad records the size and load time of a freshly built catalog
func RecordCatalogLoad(retreats int, duration time.Duration) {
	CatalogRetreats.Set(float64(retreats))
	CatalogLoadDuration.Observe(duration.Seconds())
}

// RecordTaxonomyFallback counts a type or country that fell back to a generic value
func RecordTaxonomyFallback(kind string) {
	TaxonomyFallbacks.WithLabelValues(kind).Inc()
}
