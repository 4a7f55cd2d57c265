package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AnshRaj112/shopora-backend/internal/services"
)

// RefreshShopData re-syncs the local catalog from the main server and
// returns the merged shop metadata. Every call re-fetches; nothing is
// cached beyond what lands in the products collection.
func RefreshShopData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := services.RefreshCatalog(ctx, cfg.MainServerURL, cfg.ShopAdminID)
	if errors.Is(err, services.ErrUpstreamFetch) || errors.Is(err, services.ErrUpstreamParse) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to refresh shop data")
		return
	}

	respondJSON(w, http.StatusOK, data)
}
