package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/AnshRaj112/shopora-backend/internal/database"
	"github.com/AnshRaj112/shopora-backend/internal/models"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrUpstreamFetch means the main server was unreachable or answered with a failure.
	ErrUpstreamFetch = errors.New("failed to fetch shop data from main server")
	// ErrUpstreamParse means the main server's response body could not be decoded.
	ErrUpstreamParse = errors.New("invalid shop data payload from main server")
)

// ShopData is the merged metadata returned to the caller after a refresh.
// Products carries the original remote list, not the re-fetched local copies.
type ShopData struct {
	ShopName    string                   `json:"shopName"`
	AppName     string                   `json:"appName"`
	TaxID       string                   `json:"taxId"`
	Products    []map[string]interface{} `json:"products"`
	LastUpdated string                   `json:"lastUpdated"`
}

type remoteShopPayload struct {
	Success bool     `json:"success"`
	Data    ShopData `json:"data"`
}

// The main server is the only outbound call this service makes. 15s keeps a
// stalled main server from pinning the handling request forever.
var shopDataClient = &http.Client{Timeout: 15 * time.Second}

// FetchShopData pulls this shop's catalog payload from the main server.
func FetchShopData(mainServerURL, shopAdminID string) (*ShopData, error) {
	url := fmt.Sprintf("%s/shop-data/%s", mainServerURL, shopAdminID)

	resp, err := shopDataClient.Get(url)
	if err != nil {
		return nil, ErrUpstreamFetch
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrUpstreamFetch
	}

	var payload remoteShopPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, ErrUpstreamParse
	}
	if !payload.Success {
		return nil, ErrUpstreamFetch
	}

	return &payload.Data, nil
}

// MapRemoteProduct converts one remote catalog entry into a local Product.
// The main server is loose about field names and types: name may arrive as
// productName and price as a string. Unparseable prices become 0, a missing
// category becomes "General", and every synced product is sold as in stock.
func MapRemoteProduct(raw map[string]interface{}) models.Product {
	name := cast.ToString(raw["name"])
	if name == "" {
		name = cast.ToString(raw["productName"])
	}

	category := cast.ToString(raw["category"])
	if category == "" {
		category = "General"
	}

	return models.Product{
		CreatedAt:   time.Now(),
		Name:        name,
		Price:       cast.ToFloat64(raw["price"]),
		Description: cast.ToString(raw["description"]),
		Image:       cast.ToString(raw["image"]),
		Category:    category,
		InStock:     true,
	}
}

// RefreshCatalog replaces the local products collection with the main
// server's current catalog and returns the merged shop metadata. Nothing is
// mutated when the fetch or decode fails.
//
// The replace is delete-then-reinsert, not a transaction: if the insert
// phase fails the catalog is left empty until the next refresh. The caller
// still gets the remote payload back so the storefront can render from it.
func RefreshCatalog(ctx context.Context, mainServerURL, shopAdminID string) (*ShopData, error) {
	data, err := FetchShopData(mainServerURL, shopAdminID)
	if err != nil {
		return nil, err
	}

	products := database.DB.Collection("products")
	if _, err := products.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, err
	}

	if len(data.Products) > 0 {
		docs := make([]interface{}, 0, len(data.Products))
		for _, raw := range data.Products {
			docs = append(docs, MapRemoteProduct(raw))
		}
		if _, err := products.InsertMany(ctx, docs); err != nil {
			log.Printf("catalog refresh: insert after delete failed, catalog is empty until next refresh: %v", err)
		}
	}

	return data, nil
}
