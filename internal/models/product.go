package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is one catalog entry. The whole products collection is replaced
// by the catalog refresher; products are never edited in place.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`

	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
	InStock     bool    `bson:"in_stock" json:"inStock"`
}
