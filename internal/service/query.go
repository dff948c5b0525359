package service

import (
	"cmp"
	"slices"

	"github.com/forgo/retreats/api/internal/model"
)

// Pure selection helpers over a retreat collection. Each returns a newly
// allocated slice in collection order and never modifies its input.

// Select returns the retreats for which keep reports true
func Select(rs []model.Retreat, keep func(r *model.Retreat) bool) []model.Retreat {
	out := make([]model.Retreat, 0)
	for i := range rs {
		if keep(&rs[i]) {
			out = append(out, rs[i])
		}
	}
	return out
}

// ByCategorySlug returns retreats whose mapped category equals cat
func ByCategorySlug(rs []model.Retreat, cat string, c Classifier) []model.Retreat {
	return Select(rs, func(r *model.Retreat) bool {
		return c.CategorySlugOf(r) == cat
	})
}

// ByCountry returns retreats with an exact country code match
func ByCountry(rs []model.Retreat, code string) []model.Retreat {
	return Select(rs, func(r *model.Retreat) bool {
		return r.Country == code
	})
}

// ByRegion returns retreats whose country maps to region
func ByRegion(rs []model.Retreat, region string, c Classifier) []model.Retreat {
	return Select(rs, func(r *model.Retreat) bool {
		return c.RegionOf(r) == region
	})
}

// ByPriceBand returns retreats priced within [minPrice, maxPrice], bounds included.
// Free listings match any band starting at 0; callers browsing paid bands
// should use ByBand or require a positive price.
func ByPriceBand(rs []model.Retreat, minPrice, maxPrice int) []model.Retreat {
	return Select(rs, func(r *model.Retreat) bool {
		return r.Price >= minPrice && r.Price <= maxPrice
	})
}

// ByBand returns retreats inside a standard price band
func ByBand(rs []model.Retreat, band model.PriceBand) []model.Retreat {
	return ByPriceBand(rs, band.Min, band.Max)
}

// ByNeed returns retreats listing tag among their goodFor needs
func ByNeed(rs []model.Retreat, tag string) []model.Retreat {
	return Select(rs, func(r *model.Retreat) bool {
		return r.SharesNeed(tag)
	})
}

// SortByPrice returns a copy ordered by ascending price. Equal prices keep
// their collection order.
func SortByPrice(rs []model.Retreat) []model.Retreat {
	out := slices.Clone(rs)
	if out == nil {
		out = make([]model.Retreat, 0)
	}
	slices.SortStableFunc(out, func(a, b model.Retreat) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return out
}

// Paginate returns the window [offset, offset+limit) and whether more follow
func Paginate(rs []model.Retreat, offset, limit int) ([]model.Retreat, bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rs) {
		return make([]model.Retreat, 0), false
	}
	end := len(rs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return slices.Clone(rs[offset:end]), end < len(rs)
}
