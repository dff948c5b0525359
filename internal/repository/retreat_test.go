package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/retreats/api/internal/database"
	"github.com/forgo/retreats/api/internal/model"
)

type mockDatabase struct {
	queryFunc func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
}

func (m *mockDatabase) Connect(ctx context.Context) error { return nil }
func (m *mockDatabase) Close() error                      { return nil }
func (m *mockDatabase) Ping(ctx context.Context) error    { return nil }

func (m *mockDatabase) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	return m.queryFunc(ctx, query, vars)
}

func (m *mockDatabase) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := m.queryFunc(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	records := database.Records(results)
	if len(records) == 0 {
		return nil, database.ErrNotFound
	}
	return records[0], nil
}

func TestRetreatRepository_ListRetreats(t *testing.T) {
	t.Parallel()

	var gotTable interface{}
	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			gotTable = vars["table"]
			return []interface{}{
				map[string]interface{}{
					"status": "OK",
					"result": []interface{}{
						map[string]interface{}{
							"id":       "retreat:gethsemani",
							"position": 1,
							"name":     "Abbey of Gethsemani",
							"location": "Trappist, Kentucky",
							"country":  "US",
							"price":    float64(0),
							"nights":   float64(3),
							"type":     "Trappist monastery",
							"includes": "Private room, Three meals daily",
							"good_for": []interface{}{"Silence", "Burnout"},
							"tags":     []interface{}{"Donation-based"},
							"verified": true,
						},
						map[string]interface{}{
							"id":            "retreat:kalani",
							"name":          "Kalani Oceanside Retreat",
							"location":      "Pāhoa, Hawaii",
							"country":       "US",
							"price":         float64(0),
							"nights":        float64(90),
							"type":          "Work exchange",
							"includes":      []interface{}{"Shared room", "Two meals daily"},
							"good_for":      []interface{}{"Community"},
							"tags":          []interface{}{},
							"work_exchange": true,
						},
					},
				},
			}, nil
		},
	}

	retreats, err := NewRetreatRepository(db, "").ListRetreats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultRetreatTable, gotTable)

	require.Len(t, retreats, 2)
	assert.Equal(t, "Abbey of Gethsemani", retreats[0].Name)
	assert.Equal(t, model.Includes{"Private room", "Three meals daily"}, retreats[0].Includes)
	assert.Equal(t, []string{"Silence", "Burnout"}, retreats[0].GoodFor)
	assert.True(t, retreats[0].Verified)

	assert.Equal(t, model.Includes{"Shared room", "Two meals daily"}, retreats[1].Includes)
	assert.Equal(t, 90, retreats[1].Nights)
	assert.True(t, retreats[1].WorkExchange)
}

func TestRetreatRepository_QueryError(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			return nil, database.ErrConnection
		},
	}

	_, err := NewRetreatRepository(db, "listing").ListRetreats(context.Background())
	assert.ErrorIs(t, err, database.ErrConnection)
	assert.Contains(t, err.Error(), "listing")
}

func TestRetreatRepository_BadRecord(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			return []interface{}{
				map[string]interface{}{
					"status": "OK",
					"result": []interface{}{
						map[string]interface{}{"name": "Broken", "price": "expensive"},
					},
				},
			}, nil
		},
	}

	_, err := NewRetreatRepository(db, "").ListRetreats(context.Background())
	assert.Error(t, err)
}
