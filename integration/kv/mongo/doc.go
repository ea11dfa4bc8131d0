// Package mongo provides a MongoDB-backed implementation of the kv.Store
// collaborator, persisting each key as a single document keyed by _id.
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := mongo.New(client, cfg)
package mongo
