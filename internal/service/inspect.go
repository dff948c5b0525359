package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/forgo/retreats/api/internal/model"
)

// InvalidRetreat is a record that failed ingestion validation
type InvalidRetreat struct {
	Index  int                `json:"index"`
	Name   string             `json:"name"`
	Errors []model.FieldError `json:"errors"`
}

// SlugCollision lists retreats whose names produce the same identity
type SlugCollision struct {
	Slug  string   `json:"slug"`
	Names []string `json:"names"`
}

// CatalogReport summarizes everything wrong or degraded in a collection
type CatalogReport struct {
	Total            int              `json:"total"`
	Invalid          []InvalidRetreat `json:"invalid,omitempty"`
	Collisions       []SlugCollision  `json:"collisions,omitempty"`
	UnmappedTypes    []string         `json:"unmapped_types,omitempty"`    // Types that fall back to a synthesized category
	UnknownCountries []string         `json:"unknown_countries,omitempty"` // Codes that fall back to generic labels
}

// InspectCatalog checks a collection against the taxonomy without building a catalog
func InspectCatalog(rs []model.Retreat, taxonomy *TaxonomyService) *CatalogReport {
	report := &CatalogReport{Total: len(rs)}

	owners := make(map[string][]string)
	var order []string
	unmapped := make(map[string]struct{})
	unknown := make(map[string]struct{})

	for i := range rs {
		r := &rs[i]

		errs := r.Validate()
		id := IdentityOf(r)
		if r.Name != "" && id == "" {
			errs = append(errs, model.FieldError{Field: "name", Message: "name must contain at least one letter or digit"})
		}
		if len(errs) > 0 {
			report.Invalid = append(report.Invalid, InvalidRetreat{Index: i, Name: r.Name, Errors: errs})
		}

		if id != "" {
			if _, seen := owners[id]; !seen {
				order = append(order, id)
			}
			owners[id] = append(owners[id], r.Name)
		}

		if r.Type != "" && !taxonomy.IsCanonicalType(r.Type) {
			unmapped[r.Type] = struct{}{}
		}
		if r.Country != "" && !taxonomy.IsKnownCountry(r.Country) {
			unknown[r.Country] = struct{}{}
		}
	}

	for _, id := range order {
		if names := owners[id]; len(names) > 1 {
			report.Collisions = append(report.Collisions, SlugCollision{Slug: id, Names: names})
		}
	}
	report.UnmappedTypes = sortedKeys(unmapped)
	report.UnknownCountries = sortedKeys(unknown)

	return report
}

// Err returns the load-blocking problems joined into one error, or nil.
// Unmapped types only block when strictTypes is set; unknown countries never do.
func (r *CatalogReport) Err(strictTypes bool) error {
	var errs []error
	for _, inv := range r.Invalid {
		msgs := make([]string, 0, len(inv.Errors))
		for _, fe := range inv.Errors {
			msgs = append(msgs, fe.Message)
		}
		errs = append(errs, fmt.Errorf("%w: #%d %q: %s", ErrInvalidRetreat, inv.Index, inv.Name, strings.Join(msgs, "; ")))
	}
	for _, c := range r.Collisions {
		errs = append(errs, fmt.Errorf("%w: %q shared by %s", ErrDuplicateSlug, c.Slug, strings.Join(quoteAll(c.Names), ", ")))
	}
	if strictTypes {
		for _, t := range r.UnmappedTypes {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownType, t))
		}
	}
	return errors.Join(errs...)
}

// OK reports whether the collection can be loaded
func (r *CatalogReport) OK(strictTypes bool) bool {
	return r.Err(strictTypes) == nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
