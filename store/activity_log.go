package store

import (
	"context"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (s *Store) InsertActivityLog(ctx context.Context, entry models.ActivityLog) error {
	_, err := s.col(ColActivityLogs).InsertOne(ctx, entry)
	return err
}

func (s *Store) ListActivityLogs(ctx context.Context, limit int64) ([]models.ActivityLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return findMany[models.ActivityLog](ctx, s.col(ColActivityLogs), bson.D{}, opts)
}
