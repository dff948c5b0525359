package repository

import (
	"github.com/goccy/go-json"

	"github.com/forgo/retreats/api/internal/model"
)

// Storage-only fields that are not part of the retreat model
var storageFields = []string{"id", "position", "created_on", "updated_on"}

// decodeRetreat converts a SurrealDB record into a retreat. The includes
// field may be stored either as an array or as a comma-delimited string.
func decodeRetreat(rec map[string]interface{}) (model.Retreat, error) {
	clean := make(map[string]interface{}, len(rec))
	for k, v := range rec {
		clean[k] = v
	}
	for _, k := range storageFields {
		delete(clean, k)
	}

	var retreat model.Retreat
	data, err := json.Marshal(clean)
	if err != nil {
		return retreat, err
	}
	if err := json.Unmarshal(data, &retreat); err != nil {
		return retreat, err
	}
	return retreat, nil
}
