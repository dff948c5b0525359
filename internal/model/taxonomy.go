package model

// TaxonomyTables holds the lookup tables that normalize free-text retreat
// attributes into closed vocabularies.
type TaxonomyTables struct {
	Categories []CategoryInfo    `json:"categories" yaml:"categories"` // Canonical categories in display order
	Types      map[string]string `json:"types" yaml:"types"`           // Free-text type -> category slug
	Regions    map[string]string `json:"regions" yaml:"regions"`       // Country code -> region label
	Countries  map[string]string `json:"countries" yaml:"countries"`   // Country code -> display name
}

// Taxonomy fallbacks
const (
	RegionInternational = "International"
	CountryUnknown      = "Unknown"
)
