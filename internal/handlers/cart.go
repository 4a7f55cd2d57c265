package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AnshRaj112/shopora-backend/internal/database"
	"github.com/AnshRaj112/shopora-backend/internal/models"
	"github.com/AnshRaj112/shopora-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddCartItemRequest is the payload for adding a product to a cart.
type AddCartItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// AddCartItem adds a product to the user's cart, or bumps the quantity when
// the product is already there. The whole cart is written back in one
// update with no concurrency token, so concurrent writers to the same user
// can lose each other's change (last write wins).
func AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "Product id is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := findUserByID(ctx, chi.URLParam(r, "id"))
	if err == mongo.ErrNoDocuments {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	cart := services.MergeCartItem(user.Cart, models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})

	_, err = database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"cart": cart}},
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// GetCart returns the user's current cart.
func GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := findUserByID(ctx, chi.URLParam(r, "id"))
	if err == mongo.ErrNoDocuments {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	cart := user.Cart
	if cart == nil {
		cart = []models.CartItem{}
	}

	respondJSON(w, http.StatusOK, cart)
}
