package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_FlattensStatementResults(t *testing.T) {
	t.Parallel()

	results := []interface{}{
		map[string]interface{}{
			"status": "OK",
			"result": []interface{}{
				map[string]interface{}{"name": "Plum Village"},
				"not a record",
				map[string]interface{}{"name": "Dhamma Giri"},
			},
		},
		map[string]interface{}{
			"status": "OK",
			"result": map[string]interface{}{"name": "Hollyhock"},
		},
	}

	records := Records(results)
	require.Len(t, records, 3)
	assert.Equal(t, "Plum Village", records[0]["name"])
	assert.Equal(t, "Dhamma Giri", records[1]["name"])
	assert.Equal(t, "Hollyhock", records[2]["name"])
}

func TestRecords_UnwrappedMaps(t *testing.T) {
	t.Parallel()

	records := Records([]interface{}{map[string]interface{}{"name": "Esalen Institute"}})
	require.Len(t, records, 1)
	assert.Equal(t, "Esalen Institute", records[0]["name"])
}

func TestRecords_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Records(nil))
	assert.Empty(t, Records([]interface{}{map[string]interface{}{"status": "OK", "result": []interface{}{}}}))
}

func TestSurrealDB_NotConnected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := NewSurrealDB(Config{Host: "localhost", Port: "8000"})

	_, err := db.Query(ctx, "SELECT * FROM retreat", nil)
	assert.True(t, errors.Is(err, ErrConnection))

	_, err = db.QueryOne(ctx, "SELECT * FROM retreat", nil)
	assert.True(t, errors.Is(err, ErrConnection))

	assert.True(t, errors.Is(db.Ping(ctx), ErrConnection))
	assert.NoError(t, db.Close())
}
