package store

import (
	"context"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	return findMany[models.Order](ctx, s.col(ColOrders), bson.D{})
}

func (s *Store) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return findMany[models.Order](ctx, s.col(ColOrders), bson.D{{Key: "email", Value: email}})
}

func (s *Store) InsertOrder(ctx context.Context, order models.Order) (*mongo.InsertOneResult, error) {
	return s.col(ColOrders).InsertOne(ctx, order)
}

func (s *Store) DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.col(ColOrders).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
}
