// Package fixtures provides retreat and taxonomy factories for tests.
//
// Each factory creates values with sensible defaults while allowing
// customization via option functions. Nothing touches a database; the
// results feed straight into catalog constructors.
//
// Usage:
//
//	tables := fixtures.Taxonomy()
//	r := fixtures.Retreat(fixtures.WithName("Quiet Hills"), fixtures.WithPrice(500))
package fixtures

import (
	"fmt"
	"sync/atomic"

	"github.com/forgo/retreats/api/internal/model"
)

var seq atomic.Int64

// uniqueName returns a distinct retreat name so identities never collide
func uniqueName() string {
	return fmt.Sprintf("Fixture Retreat %d", seq.Add(1))
}

// ============================================================================
// Retreat Fixtures
// ============================================================================

// RetreatOpt customizes a retreat
type RetreatOpt func(*model.Retreat)

// Retreat creates a valid retreat with optional customizations
func Retreat(opts ...RetreatOpt) model.Retreat {
	r := model.Retreat{
		Name:     uniqueName(),
		Location: "Somewhere, Vermont",
		Country:  "US",
		Price:    300,
		Nights:   2,
		Type:     "Retreat center",
		Includes: model.Includes{"Lodging", "Meals"},
		GoodFor:  []string{"Rest"},
		Tags:     []string{"quiet"},
	}
	for _, fn := range opts {
		fn(&r)
	}
	return r
}

// Retreats creates n default retreats, applying opts to each
func Retreats(n int, opts ...RetreatOpt) []model.Retreat {
	out := make([]model.Retreat, n)
	for i := range out {
		out[i] = Retreat(opts...)
	}
	return out
}

// WithName sets the retreat name (and therefore its identity)
func WithName(name string) RetreatOpt {
	return func(r *model.Retreat) { r.Name = name }
}

// WithType sets the free-text retreat type
func WithType(typ string) RetreatOpt {
	return func(r *model.Retreat) { r.Type = typ }
}

// WithCountry sets the country code
func WithCountry(code string) RetreatOpt {
	return func(r *model.Retreat) { r.Country = code }
}

// WithPrice sets the price
func WithPrice(price int) RetreatOpt {
	return func(r *model.Retreat) { r.Price = price }
}

// WithGoodFor replaces the goodFor tags
func WithGoodFor(tags ...string) RetreatOpt {
	return func(r *model.Retreat) { r.GoodFor = tags }
}

// WithFlags sets the boolean listing flags
func WithFlags(verified, communityRun, workExchange, scholarship, slidingScale bool) RetreatOpt {
	return func(r *model.Retreat) {
		r.Verified = verified
		r.CommunityRun = communityRun
		r.WorkExchange = workExchange
		r.Scholarship = scholarship
		r.SlidingScale = slidingScale
	}
}

// ============================================================================
// Taxonomy Fixtures
// ============================================================================

// Taxonomy returns a small lookup table set covering the fixture defaults
func Taxonomy() *model.TaxonomyTables {
	return &model.TaxonomyTables{
		Categories: []model.CategoryInfo{
			{Slug: model.CategoryRetreat, Label: "Retreat Centers"},
			{Slug: model.CategoryMonastery, Label: "Monasteries"},
			{Slug: model.CategoryMeditation, Label: "Meditation Retreats"},
			{Slug: model.CategoryYoga, Label: "Yoga Retreats"},
			{Slug: model.CategoryWorkExchange, Label: "Work Exchange"},
		},
		Types: map[string]string{
			"Retreat center":     model.CategoryRetreat,
			"Zen monastery":      model.CategoryMonastery,
			"Trappist monastery": model.CategoryMonastery,
			"Vipassana center":   model.CategoryMeditation,
			"Yoga retreat":       model.CategoryYoga,
			"Work exchange":      model.CategoryWorkExchange,
		},
		Regions: map[string]string{
			"US": "North America",
			"CA": "North America",
			"FR": "Europe",
			"IN": "South Asia",
			"JP": "East Asia",
		},
		Countries: map[string]string{
			"US": "United States",
			"CA": "Canada",
			"FR": "France",
			"IN": "India",
			"JP": "Japan",
		},
	}
}
