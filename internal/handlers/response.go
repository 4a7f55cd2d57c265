package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AnshRaj112/shopora-backend/internal/config"
)

// cfg is the loaded configuration, wired in from main via Init.
var cfg *config.Config

// Init hands the loaded configuration to the handler package.
func Init(c *config.Config) {
	cfg = c
}

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: false, Error: message})
}
