package model

// Canonical category slugs. Free-text retreat types map onto these through the
// taxonomy tables.
const (
	CategoryRetreat       = "retreat"
	CategoryMonastery     = "monastery"
	CategoryAshram        = "ashram"
	CategoryMeditation    = "meditation"
	CategorySilent        = "silent"
	CategoryYoga          = "yoga"
	CategoryWorkExchange  = "work-exchange"
	CategoryChristian     = "christian"
	CategoryBuddhist      = "buddhist"
	CategoryHindu         = "hindu"
	CategorySufi          = "sufi"
	CategoryWellness      = "wellness"
	CategoryNature        = "nature"
	CategoryCommunity     = "community"
	CategoryHealing       = "healing"
	CategoryPlantMedicine = "plant-medicine"
	CategoryArtsCreative  = "arts-creative"
	CategoryFasting       = "fasting"
	CategoryDigitalDetox  = "digital-detox"
	CategoryGrief         = "grief"

	// CategoryUncategorized is used when a type label has no usable characters.
	CategoryUncategorized = "uncategorized"
)

// CategoryInfo provides display information for a category
type CategoryInfo struct {
	Slug        string `json:"slug" yaml:"slug"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CategorySummary is a category with the number of retreats filed under it
type CategorySummary struct {
	CategoryInfo
	Canonical bool `json:"canonical"` // false for categories synthesized from unmapped types
	Count     int  `json:"count"`
}

// CountrySummary is a country present in the catalog
type CountrySummary struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Count  int    `json:"count"`
}
