package store

import (
	"context"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// FindUserByEmail returns ErrNotFound when no record exists. "No such user"
// and "user with no role" are different outcomes and stay that way.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, s.col(ColUsers), bson.D{{Key: "email", Value: email}})
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return findMany[models.User](ctx, s.col(ColUsers), bson.D{})
}

func (s *Store) InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.col(ColUsers).InsertOne(ctx, user)
}

// UpsertUser writes the user keyed by email, creating the record on first
// sign-in. The role field is only written when non-empty so an upsert from
// the storefront cannot strip an admin grant.
func (s *Store) UpsertUser(ctx context.Context, user models.User) (*mongo.UpdateResult, error) {
	set := bson.D{
		{Key: "email", Value: user.Email},
		{Key: "displayName", Value: user.DisplayName},
		{Key: "photoURL", Value: user.PhotoURL},
	}
	if user.Role != models.RoleNone {
		set = append(set, bson.E{Key: "role", Value: user.Role})
	}

	return s.col(ColUsers).UpdateOne(ctx,
		bson.D{{Key: "email", Value: user.Email}},
		bson.D{{Key: "$set", Value: set}},
		options.UpdateOne().SetUpsert(true),
	)
}

func (s *Store) SetUserRole(ctx context.Context, email string, role models.Role) (*mongo.UpdateResult, error) {
	return s.col(ColUsers).UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}},
	)
}
