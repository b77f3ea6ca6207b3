package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderItem struct {
	ProductID string `json:"productId,omitempty" bson:"productId,omitempty"`
	Title     string `json:"title" bson:"title"`
	Price     string `json:"price" bson:"price"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Order is owned by the email that placed it. Creation and deletion carry no
// authorization check, matching the storefront's checkout flow.
type Order struct {
	ID         bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email      string        `json:"email" bson:"email"`
	Name       string        `json:"name,omitempty" bson:"name,omitempty"`
	Address    string        `json:"address,omitempty" bson:"address,omitempty"`
	Phone      string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Items      []OrderItem   `json:"items,omitempty" bson:"items,omitempty"`
	TotalPrice string        `json:"totalPrice,omitempty" bson:"totalPrice,omitempty"`
	Status     string        `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt  time.Time     `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Email      string      `json:"email" binding:"required,email"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Phone      string      `json:"phone"`
	Items      []OrderItem `json:"items"`
	TotalPrice string      `json:"totalPrice"`
	Status     string      `json:"status"`
}
