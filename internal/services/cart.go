package services

import (
	"fmt"
	"time"

	"github.com/AnshRaj112/shopora-backend/internal/models"
)

// OrderStatusPending is the status every new order starts in.
const OrderStatusPending = "pending"

// MergeCartItem folds item into cart keeping at most one line per product:
// an existing line for the same product id gets its quantity incremented,
// anything else is appended with the add timestamp set.
func MergeCartItem(cart []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range cart {
		if cart[i].ProductID == item.ProductID {
			cart[i].Quantity += item.Quantity
			return cart
		}
	}
	item.AddedAt = time.Now()
	return append(cart, item)
}

// CartTotal sums price×quantity over every line.
func CartTotal(cart []models.CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// BuildOrder snapshots the cart into a new pending order. An empty cart
// yields a valid zero-total order. The order id is time-based, so two
// orders placed in the same millisecond share an id.
func BuildOrder(cart []models.CartItem) models.Order {
	lines := make([]models.OrderLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, models.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return models.Order{
		OrderID:   fmt.Sprintf("ORD%d", time.Now().UnixMilli()),
		Products:  lines,
		Total:     CartTotal(cart),
		Status:    OrderStatusPending,
		CreatedAt: time.Now(),
	}
}
