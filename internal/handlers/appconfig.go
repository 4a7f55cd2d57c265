package handlers

import (
	"net/http"
	"time"
)

// AppConfig is the static storefront configuration payload.
type AppConfig struct {
	ShopName    string          `json:"shopName"`
	AppName     string          `json:"appName"`
	ShopAdminID string          `json:"shopAdminId"`
	Features    map[string]bool `json:"features"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// GetAppConfig returns the storefront configuration. LastUpdated is the
// call time, not a persisted value.
func GetAppConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, AppConfig{
		ShopName:    "Shopora",
		AppName:     "Shopora Storefront",
		ShopAdminID: cfg.ShopAdminID,
		Features: map[string]bool{
			"cart":          true,
			"orders":        true,
			"search":        true,
			"guestCheckout": false,
		},
		LastUpdated: time.Now(),
	})
}

// Health reports liveness. It always succeeds while the process is up.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}
