package services

import (
	"strings"
	"testing"

	"github.com/AnshRaj112/shopora-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCartItemAccumulatesQuantity(t *testing.T) {
	cart := []models.CartItem{}
	cart = MergeCartItem(cart, models.CartItem{ProductID: "p1", Name: "Mug", Price: 10, Quantity: 2})
	cart = MergeCartItem(cart, models.CartItem{ProductID: "p1", Name: "Mug", Price: 10, Quantity: 3})

	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ProductID)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestMergeCartItemAppendsDistinctProducts(t *testing.T) {
	cart := []models.CartItem{}
	cart = MergeCartItem(cart, models.CartItem{ProductID: "p1", Quantity: 1})
	cart = MergeCartItem(cart, models.CartItem{ProductID: "p2", Quantity: 4})

	require.Len(t, cart, 2)
	assert.Equal(t, "p2", cart[1].ProductID)
	assert.Equal(t, 4, cart[1].Quantity)
	assert.False(t, cart[1].AddedAt.IsZero(), "new lines get an add timestamp")
}

func TestCartTotal(t *testing.T) {
	cart := []models.CartItem{
		{ProductID: "p1", Price: 10, Quantity: 2},
		{ProductID: "p2", Price: 5, Quantity: 1},
	}

	assert.Equal(t, 25.0, CartTotal(cart))
	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestBuildOrderSnapshotsCart(t *testing.T) {
	cart := []models.CartItem{
		{ProductID: "p1", Name: "Mug", Price: 10, Quantity: 2},
		{ProductID: "p2", Name: "Plate", Price: 5, Quantity: 1},
	}

	order := BuildOrder(cart)

	assert.Equal(t, 25.0, order.Total)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderID, "ORD"))
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, order.Products, 2)
	assert.Equal(t, models.OrderLine{ProductID: "p1", Name: "Mug", Price: 10, Quantity: 2}, order.Products[0])
	assert.Equal(t, models.OrderLine{ProductID: "p2", Name: "Plate", Price: 5, Quantity: 1}, order.Products[1])
}

func TestBuildOrderEmptyCart(t *testing.T) {
	order := BuildOrder(nil)

	assert.Equal(t, 0.0, order.Total)
	assert.NotNil(t, order.Products)
	assert.Len(t, order.Products, 0)
	assert.Equal(t, OrderStatusPending, order.Status)
}
