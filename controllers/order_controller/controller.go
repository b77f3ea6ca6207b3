package order_controller

import (
	"context"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Store interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
	InsertOrder(ctx context.Context, order models.Order) (*mongo.InsertOneResult, error)
	DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// Controller serves the orders collection. Creation and deletion are open
// endpoints; tightening them is a product decision outside this surface.
type Controller struct {
	store Store
}

func New(s Store) *Controller {
	return &Controller{store: s}
}
