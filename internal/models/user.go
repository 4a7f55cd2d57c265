package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`

	Address Address `bson:"address,omitempty" json:"address,omitempty"`

	// Cart and order history live inside the user document; they have no
	// identity outside their owner.
	Cart   []CartItem `bson:"cart" json:"cart"`
	Orders []Order    `bson:"orders" json:"orders"`
}

type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
}

// CartItem is one product line in a user's cart. ProductID, name and price
// are denormalized copies taken at add time, not live references into the
// products collection. A cart holds at most one line per product id.
type CartItem struct {
	ProductID string    `bson:"product_id" json:"productId"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}

// OrderLine is a cart line frozen into an order (AddedAt is dropped).
type OrderLine struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is an immutable snapshot of a cart at placement time. Orders are
// append-only; nothing in the API edits or removes them, and Status stays
// "pending" until some out-of-band process moves it.
type Order struct {
	OrderID   string      `bson:"order_id" json:"orderId"`
	Products  []OrderLine `bson:"products" json:"products"`
	Total     float64     `bson:"total" json:"total"`
	Status    string      `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"created_at" json:"createdAt"`
}
