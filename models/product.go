package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// AddedByDetails is kept on products created by a temp admin, for audit
// purposes only. It never participates in authorization.
type AddedByDetails struct {
	Email string `json:"email" bson:"email"`
	Name  string `json:"name" bson:"name"`
}

// Product is a pet food or pet accessory/toy document. Price and stock are
// stored as the raw form-field strings the storefront submits. Img holds the
// uploaded image bytes inline; it marshals to base64 in JSON responses.
type Product struct {
	ID             bson.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Animal         string          `json:"animal" bson:"animal"`
	Title          string          `json:"title" bson:"title"`
	Brand          string          `json:"brand,omitempty" bson:"brand,omitempty"`
	Price          string          `json:"price" bson:"price"`
	Stock          string          `json:"stock" bson:"stock"`
	Img            []byte          `json:"img" bson:"img"`
	AddedBy        string          `json:"addedBy,omitempty" bson:"addedBy,omitempty"`
	AddedByDetails *AddedByDetails `json:"addedByDetails,omitempty" bson:"addedByDetails,omitempty"`
}

// ProductPatch carries the fields of a PATCH request. Nil fields were not
// provided and must not touch the stored document (merge semantics, distinct
// from PUT's whole-record replace).
type ProductPatch struct {
	Animal *string
	Title  *string
	Brand  *string
	Price  *string
	Stock  *string
	Img    []byte
}
