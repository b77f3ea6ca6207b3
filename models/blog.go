package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Blog posts are seeded directly into the collection; the API only reads them.
type Blog struct {
	ID        bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	BlogTitle string        `json:"blogTitle" bson:"blogTitle"`
	Body      string        `json:"body,omitempty" bson:"body,omitempty"`
	Author    string        `json:"author,omitempty" bson:"author,omitempty"`
	Img       string        `json:"img,omitempty" bson:"img,omitempty"`
}
