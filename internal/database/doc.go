// Package database provides the optional SurrealDB connection used when the
// retreat catalog is sourced from a database instead of embedded data.
//
// The catalog is read exactly once at startup, so the interface is read-only:
//
//	type Database interface {
//	    Connect(ctx context.Context) error
//	    Close() error
//	    Ping(ctx context.Context) error
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	}
//
// # Connection Management
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "retreats",
//	    Database:  "catalog",
//	    User:      "root",
//	    Password:  "secret",
//	})
//	if err := db.Connect(ctx); err != nil { ... }
//	defer db.Close()
//
// # Error Types
//
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection failed
//   - ErrQuery: Query execution failed
package database
