// Package postgres provides a PostgreSQL-backed implementation of the
// kv.Store collaborator, persisting each key as a row in the kv_entries
// table.
//
// Connect establishes a pgx pool with retry and ping verification; Migrate
// applies the embedded goose migrations that create the table:
//
//	pool, err := postgres.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := postgres.Migrate(ctx, pool); err != nil {
//		log.Fatal(err)
//	}
//	store := postgres.New(pool)
package postgres
