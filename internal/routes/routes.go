package routes

import (
	"github.com/AnshRaj112/shopora-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r chi.Router) {
	// Catalog routes
	r.Get("/api/products", handlers.ListProducts)
	r.Get("/api/products/search/{query}", handlers.SearchProducts)
	r.Get("/api/products/{id}", handlers.GetProduct)

	// Account routes
	r.Post("/api/users/register", handlers.RegisterUser)
	r.Get("/api/users/{id}", handlers.GetUser)

	// Cart routes
	r.Post("/api/users/{id}/cart", handlers.AddCartItem)
	r.Get("/api/users/{id}/cart", handlers.GetCart)

	// Order routes
	r.Post("/api/users/{id}/orders", handlers.PlaceOrder)
	r.Get("/api/users/{id}/orders", handlers.ListOrders)

	// Shop data sync + storefront config
	r.Get("/api/shop-data", handlers.RefreshShopData)
	r.Get("/api/app-config", handlers.GetAppConfig)
}
