// Package store wraps the MongoDB connection behind an explicitly
// constructed handle. It is opened once in main and injected into every
// controller; no package-level client exists.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names, matching the live database exactly.
const (
	ColPetFood      = "petfood"
	ColPetAccAndToy = "petAccAndToy"
	ColBlogs        = "blogs"
	ColUsers        = "users"
	ColOrders       = "orders"
	ColActivityLogs = "activity_logs"
)

// ErrNotFound is returned when a lookup matches no document. Callers must
// not conflate it with a present record carrying no role.
var ErrNotFound = errors.New("store: not found")

// ErrInvalidID is returned when a path id is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("store: invalid object id")

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects, pings, and ensures indexes.
func NewStore(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping failed: %w", err)
	}

	s := &Store{client: client, db: client.Database(dbName)}

	if err := s.ensureIndexes(ctx); err != nil {
		log.Printf("WARNING: store: ensure indexes failed: %v", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColOrders, bson.D{{Key: "email", Value: 1}}, false},
		{ColBlogs, bson.D{{Key: "blogTitle", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := s.col(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}

	return nil
}
