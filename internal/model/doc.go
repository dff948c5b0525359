// Package model defines the catalog entities shared by every layer of the
// retreats API.
//
// # Domain Entities
//
//   - Retreat: a venue listing with price, stay length, free-text type,
//     need tags (good_for) and feature flags
//   - CategoryInfo: a canonical category slug with its display label
//   - PriceBand: an inclusive price range for budget browsing
//
// # Ingestion Validation
//
// Retreats are validated once, when the catalog is built, using
// go-playground/validator struct tags. Failures are reported as FieldError
// values keyed by JSON field name:
//
//	for _, fe := range r.Validate() {
//	    fmt.Printf("%s: %s\n", fe.Field, fe.Message)
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go.
package model
