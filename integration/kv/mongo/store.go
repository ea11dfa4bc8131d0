package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	gomongo "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/toheco/tohekit/core/kv"
)

// Compile-time check that Store implements the kv.Store interface.
var _ kv.Store = (*Store)(nil)

// entry is the stored document shape: the key doubles as the document id.
type entry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Connect creates a MongoDB client and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*gomongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	client, err := gomongo.Connect(options.Client().ApplyURI(cfg.ConnectionURL))
	if err != nil {
		return nil, errors.Join(ErrNotReady, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Join(ErrNotReady, err)
	}
	return client, nil
}

// Healthcheck returns a health check function that verifies server
// connectivity with a ping.
func Healthcheck(client *gomongo.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

// Store is a MongoDB-backed kv.Store.
type Store struct {
	coll *gomongo.Collection
}

// New creates a Store over an established client using the configured
// database and collection.
func New(client *gomongo.Client, cfg Config) *Store {
	return &Store{coll: client.Database(cfg.Database).Collection(cfg.Collection)}
}

// Get returns the value stored under key, or kv.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var doc entry
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, gomongo.ErrNoDocuments) {
			return "", kv.ErrNotFound
		}
		return "", errors.Join(kv.ErrUnavailable, err)
	}
	return doc.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		entry{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(kv.ErrUnavailable, err)
	}
	return nil
}

// Remove deletes the value stored under key. Deleting an absent key
// succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errors.Join(kv.ErrUnavailable, err)
	}
	return nil
}
