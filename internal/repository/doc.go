// Package repository reads the retreat collection and taxonomy tables.
//
// Every repository is read-only and is consulted once, at start-up, to
// build the in-memory catalog.
//
// # Sources
//
//   - YAMLRepository: the embedded seed files, or YAML files on disk
//     (NewEmbeddedRepository, NewFileRepository)
//   - RetreatRepository: the retreat table in SurrealDB
//
// OpenSource picks one from the configuration and pairs it with a taxonomy
// loader. SurrealDB only stores retreats; taxonomy always comes from YAML.
//
// # Decoding
//
// YAML is decoded strictly, so an unknown key is an error. Database records
// drop their storage fields (id, position, timestamps) and are decoded
// through the same JSON tags as the model.
//
// # Example Usage
//
//	src, err := repository.OpenSource(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	retreats, err := src.Retreats.ListRetreats(ctx)
package repository
