package service

import (
	"slices"

	"github.com/forgo/retreats/api/internal/model"
)

// DefaultRelatedLimit is how many related retreats a listing shows
const DefaultRelatedLimit = 4

type relatedCandidate struct {
	retreat      model.Retreat
	sameCategory bool
	sharedNeeds  int
}

// RelatedTo ranks retreats from collection that are similar to focal.
//
// A candidate must share the focal category or at least one goodFor tag;
// anything else is excluded. Same-category candidates rank first, then by the
// number of shared goodFor tags, descending. Remaining ties keep collection
// order. The focal retreat itself (by identity) is never returned. A limit
// of zero or less means DefaultRelatedLimit.
func RelatedTo(focal model.Retreat, collection []model.Retreat, limit int, c Classifier) []model.Retreat {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	focalID := IdentityOf(&focal)
	focalCategory := c.CategorySlugOf(&focal)

	candidates := make([]relatedCandidate, 0)
	for i := range collection {
		r := &collection[i]
		if IdentityOf(r) == focalID {
			continue
		}
		same := c.CategorySlugOf(r) == focalCategory
		shared := focal.SharedNeedCount(r)
		if !same && shared == 0 {
			continue
		}
		candidates = append(candidates, relatedCandidate{retreat: *r, sameCategory: same, sharedNeeds: shared})
	}

	slices.SortStableFunc(candidates, func(a, b relatedCandidate) int {
		if a.sameCategory != b.sameCategory {
			if a.sameCategory {
				return -1
			}
			return 1
		}
		return b.sharedNeeds - a.sharedNeeds
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]model.Retreat, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.retreat
	}
	return out
}
