package model

import (
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Retreat is a single venue listing in the catalog.
type Retreat struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Location    string   `json:"location" yaml:"location" validate:"required"`
	Country     string   `json:"country" yaml:"country" validate:"required,countrycode"`
	Price       int      `json:"price" yaml:"price" validate:"gte=0"`   // 0 = free, donation or work exchange
	Nights      int      `json:"nights" yaml:"nights" validate:"gte=1"` // Minimum stay
	Type        string   `json:"type" yaml:"type" validate:"required"`  // Free text, see taxonomy
	Includes    Includes `json:"includes" yaml:"includes" validate:"dive,required"`
	GoodFor     []string `json:"good_for" yaml:"good_for" validate:"dive,required"`
	Tags        []string `json:"tags" yaml:"tags" validate:"dive,required"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Website     string   `json:"website,omitempty" yaml:"website,omitempty" validate:"omitempty,url"`

	Verified     bool `json:"verified" yaml:"verified"`
	CommunityRun bool `json:"community_run" yaml:"community_run"`
	WorkExchange bool `json:"work_exchange" yaml:"work_exchange"`
	Scholarship  bool `json:"scholarship" yaml:"scholarship"`
	SlidingScale bool `json:"sliding_scale" yaml:"sliding_scale"`
}

// IsFree reports whether the listing costs nothing up front.
func (r *Retreat) IsFree() bool {
	return r.Price == 0
}

// SharesNeed reports whether r lists the given goodFor tag.
func (r *Retreat) SharesNeed(tag string) bool {
	for _, g := range r.GoodFor {
		if g == tag {
			return true
		}
	}
	return false
}

// SharedNeedCount counts goodFor tags present on both retreats.
// Duplicate tags on either side are counted once.
func (r *Retreat) SharedNeedCount(other *Retreat) int {
	if len(r.GoodFor) == 0 || len(other.GoodFor) == 0 {
		return 0
	}
	mine := make(map[string]struct{}, len(r.GoodFor))
	for _, g := range r.GoodFor {
		mine[g] = struct{}{}
	}
	count := 0
	for _, g := range other.GoodFor {
		if _, ok := mine[g]; ok {
			count++
			delete(mine, g)
		}
	}
	return count
}

// Includes lists what the price covers, in display order.
//
// Older data stores it as one comma-delimited string; both forms decode.
type Includes []string

// ParseIncludes splits a comma-delimited includes string.
func ParseIncludes(s string) Includes {
	parts := strings.Split(s, ",")
	out := make(Includes, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String joins the items back into the legacy display form.
func (i Includes) String() string {
	return strings.Join(i, ", ")
}

// UnmarshalJSON accepts either a JSON array of strings or a comma-delimited string.
func (i *Includes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = ParseIncludes(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*i = Includes(items)
	return nil
}

// UnmarshalYAML accepts either a sequence or a comma-delimited scalar.
func (i *Includes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*i = ParseIncludes(node.Value)
		return nil
	}
	var items []string
	if err := node.Decode(&items); err != nil {
		return err
	}
	*i = Includes(items)
	return nil
}
