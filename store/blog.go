package store

import (
	"context"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (s *Store) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return findMany[models.Blog](ctx, s.col(ColBlogs), bson.D{})
}
