package service

import (
	"github.com/forgo/retreats/api/internal/model"
	"github.com/forgo/retreats/api/pkg/slug"
)

// IdentityOf returns the URL identity of a retreat, derived from its name
func IdentityOf(r *model.Retreat) string {
	return slug.Make(r.Name)
}

// resolveIn scans rs for the first retreat whose identity equals id
func resolveIn(rs []model.Retreat, id string) (model.Retreat, bool) {
	if id == "" {
		return model.Retreat{}, false
	}
	for i := range rs {
		if IdentityOf(&rs[i]) == id {
			return rs[i], true
		}
	}
	return model.Retreat{}, false
}
