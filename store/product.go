package store

import (
	"context"
	"fmt"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Product operations are shared by the petfood and petAccAndToy collections;
// callers pass the collection name constant.

func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func (s *Store) ListProducts(ctx context.Context, collection string) ([]models.Product, error) {
	return findMany[models.Product](ctx, s.col(collection), bson.D{})
}

func (s *Store) GetProduct(ctx context.Context, collection, id string) (*models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Product](ctx, s.col(collection), bson.D{{Key: "_id", Value: oid}})
}

func (s *Store) InsertProduct(ctx context.Context, collection string, p models.Product) (*mongo.InsertOneResult, error) {
	return s.col(collection).InsertOne(ctx, p)
}

// ReplaceProduct is the PUT semantics: every field is written, so a caller
// that omits a field overwrites it with the zero value.
func (s *Store) ReplaceProduct(ctx context.Context, collection, id string, p models.Product) (*mongo.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{
		{Key: "animal", Value: p.Animal},
		{Key: "title", Value: p.Title},
		{Key: "price", Value: p.Price},
		{Key: "stock", Value: p.Stock},
		{Key: "img", Value: p.Img},
	}
	if p.Brand != "" {
		set = append(set, bson.E{Key: "brand", Value: p.Brand})
	}

	return s.col(collection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
	)
}

// PatchProduct is the PATCH semantics: only provided fields reach the $set
// document; everything else, the stored image included, stays untouched.
func (s *Store) PatchProduct(ctx context.Context, collection, id string, patch models.ProductPatch) (*mongo.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	if patch.Animal != nil {
		set = append(set, bson.E{Key: "animal", Value: *patch.Animal})
	}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Brand != nil {
		set = append(set, bson.E{Key: "brand", Value: *patch.Brand})
	}
	if patch.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *patch.Price})
	}
	if patch.Stock != nil {
		set = append(set, bson.E{Key: "stock", Value: *patch.Stock})
	}
	if patch.Img != nil {
		set = append(set, bson.E{Key: "img", Value: patch.Img})
	}

	if len(set) == 0 {
		// Nothing to merge; report a zero-mutation result without a round trip.
		return &mongo.UpdateResult{}, nil
	}

	return s.col(collection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
	)
}

func (s *Store) DeleteProduct(ctx context.Context, collection, id string) (*mongo.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.col(collection).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
}
