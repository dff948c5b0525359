// Package middleware provides HTTP middleware for the retreat catalog API.
//
// # Available Middleware
//
//   - RequestID: propagates or generates X-Request-ID
//   - Logger: structured request logs plus Prometheus request metrics
//   - Recovery: turns panics into 500 problem responses
//   - CORS: cross-origin headers for the read-only API
//   - RateLimit: per-client token buckets, 429 with Retry-After when empty
//   - Compress: gzip response bodies
//
// # Ordering
//
// Use Chain to apply middleware, outermost first:
//
//	handler := middleware.Chain(mux,
//	    middleware.Recovery,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.CORS(cfg.Server.AllowedOrigins),
//	    middleware.RateLimit(limiter),
//	    middleware.Compress,
//	)
//
// Logger reads the matched route from the request after the mux has run, so
// it must sit after RequestID (which replaces the request) and before the mux.
package middleware
