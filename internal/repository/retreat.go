package repository

import (
	"context"
	"fmt"

	"github.com/forgo/retreats/api/internal/database"
	"github.com/forgo/retreats/api/internal/model"
)

// DefaultRetreatTable is the SurrealDB table holding retreat records
const DefaultRetreatTable = "retreat"

// RetreatRepository reads retreats stored in SurrealDB
type RetreatRepository struct {
	db    database.Database
	table string
}

// NewRetreatRepository creates a new retreat repository
func NewRetreatRepository(db database.Database, table string) *RetreatRepository {
	if table == "" {
		table = DefaultRetreatTable
	}
	return &RetreatRepository{db: db, table: table}
}

// ListRetreats returns every stored retreat. Records are ordered by their
// optional position field, then name, which defines the collection order.
func (r *RetreatRepository) ListRetreats(ctx context.Context) ([]model.Retreat, error) {
	query := `SELECT * FROM type::table($table) ORDER BY position, name`
	vars := map[string]interface{}{"table": r.table}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("list retreats from %s: %w", r.table, err)
	}

	records := database.Records(result)
	retreats := make([]model.Retreat, 0, len(records))
	for i, rec := range records {
		retreat, err := decodeRetreat(rec)
		if err != nil {
			return nil, fmt.Errorf("decode %s record %d: %w", r.table, i, err)
		}
		retreats = append(retreats, retreat)
	}
	return retreats, nil
}
