// Package fixtures provides test data factories for the retreat catalog.
//
// # Retreats
//
// Retreat returns a valid listing with a unique name:
//
//	r := fixtures.Retreat()                                  // defaults
//	r := fixtures.Retreat(fixtures.WithType("Zen monastery")) // customized
//	rs := fixtures.Retreats(10, fixtures.WithCountry("FR"))
//
// # Taxonomy
//
// Taxonomy returns a small table set that maps every fixture default:
//
//	svc := service.NewTaxonomyService(service.TaxonomyServiceConfig{Tables: fixtures.Taxonomy()})
package fixtures
