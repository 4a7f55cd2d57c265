package handlers

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/AnshRaj112/shopora-backend/internal/database"
	"github.com/AnshRaj112/shopora-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListProducts returns every product currently marked in stock, in store order.
func ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("products").Find(ctx, bson.M{"in_stock": true})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProduct returns one product by id. A malformed id is treated the same
// as an absent one.
func GetProduct(w http.ResponseWriter, r *http.Request) {
	objectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err = database.DB.Collection("products").FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// SearchProducts matches the query case-insensitively against name,
// description and category, in-stock products only. An empty query matches
// everything in stock.
func SearchProducts(w http.ResponseWriter, r *http.Request) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(chi.URLParam(r, "query")), Options: "i"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"in_stock": true,
		"$or": []bson.M{
			{"name": pattern},
			{"description": pattern},
			{"category": pattern},
		},
	}

	cursor, err := database.DB.Collection("products").Find(ctx, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search products")
		return
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}
