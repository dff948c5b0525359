package model

import "math"

// PriceBand is an inclusive price range used for budget browsing.
type PriceBand struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Contains reports whether price falls inside the band, bounds included.
func (b PriceBand) Contains(price int) bool {
	return price >= b.Min && price <= b.Max
}

// Standard price bands. Free listings sit in their own band so that
// "under $500" never mixes donation-based stays with the cheapest paid ones.
const (
	PriceBandFree     = "free"
	PriceBandUnder500 = "under-500"
	PriceBand500To1k  = "500-1000"
	PriceBand1kTo2k   = "1000-2000"
	PriceBand2kPlus   = "2000-plus"
)

// GetPriceBands returns the standard bands in ascending order
func GetPriceBands() []PriceBand {
	return []PriceBand{
		{Slug: PriceBandFree, Label: "Free / donation", Min: 0, Max: 0},
		{Slug: PriceBandUnder500, Label: "Under $500", Min: 1, Max: 500},
		{Slug: PriceBand500To1k, Label: "$501 - $1,000", Min: 501, Max: 1000},
		{Slug: PriceBand1kTo2k, Label: "$1,001 - $2,000", Min: 1001, Max: 2000},
		{Slug: PriceBand2kPlus, Label: "Over $2,000", Min: 2001, Max: math.MaxInt},
	}
}

// GetPriceBand looks up a standard band by slug
func GetPriceBand(slug string) (PriceBand, bool) {
	for _, b := range GetPriceBands() {
		if b.Slug == slug {
			return b, true
		}
	}
	return PriceBand{}, false
}

// BandOf returns the standard band containing price.
// Negative prices never pass validation and report false.
func BandOf(price int) (PriceBand, bool) {
	for _, b := range GetPriceBands() {
		if b.Contains(price) {
			return b, true
		}
	}
	return PriceBand{}, false
}
