package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/AnshRaj112/shopora-backend/internal/database"
	"github.com/AnshRaj112/shopora-backend/internal/models"
	"github.com/AnshRaj112/shopora-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaceOrder snapshots the user's cart into a new order and clears the
// cart, both in a single document update. An empty cart still produces a
// zero-total order. Same caveat as AddCartItem: the read-modify-write has
// no concurrency token, so a concurrent cart change can be lost.
func PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := findUserByID(ctx, chi.URLParam(r, "id"))
	if err == mongo.ErrNoDocuments {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	order := services.BuildOrder(user.Cart)

	_, err = database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{
			"orders": append(user.Orders, order),
			"cart":   []models.CartItem{},
		}},
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// ListOrders returns the user's order history, oldest first.
func ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := findUserByID(ctx, chi.URLParam(r, "id"))
	if err == mongo.ErrNoDocuments {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	orders := user.Orders
	if orders == nil {
		orders = []models.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}
