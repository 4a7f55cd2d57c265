package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AnshRaj112/shopora-backend/internal/database"
	"github.com/AnshRaj112/shopora-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterUserRequest is the payload for creating an account.
type RegisterUserRequest struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address models.Address `json:"address"`
}

// RegisterUser creates a user account with an empty cart and order history.
// Email is the identity: a second registration with the same email is
// rejected and the first record is left untouched.
func RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Check-then-insert: a concurrent duplicate can slip through the gap
	// between these two calls, accepted in place of a unique index.
	count, err := database.DB.Collection("users").CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if count > 0 {
		respondError(w, http.StatusBadRequest, "User with this email already exists")
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		CreatedAt: time.Now(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Cart:      []models.CartItem{},
		Orders:    []models.Order{},
	}

	if _, err = database.DB.Collection("users").InsertOne(ctx, user); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// GetUser returns a user's profile including cart and order history.
func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := findUserByID(ctx, chi.URLParam(r, "id"))
	if err == mongo.ErrNoDocuments {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// findUserByID loads the whole user document. A malformed id reads as not found.
func findUserByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var user models.User
	if err := database.DB.Collection("users").FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
