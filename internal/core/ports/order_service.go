package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// PlaceOrderInput carries the data needed to place an order.
type PlaceOrderInput struct {
	UserID    string
	ProductID string
	Quantity  int
}

// OrderService defines the order use-cases and catalog reads.
type OrderService interface {
	// PlaceOrder decrements stock and records the order, returning the new
	// order id. Stock check and decrement are atomic against the store.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (string, error)

	// GetOrder returns the order only to its owner; others get
	// domain.ErrForbidden.
	GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error)

	ListOrdersFor(ctx context.Context, userID string) ([]domain.Order, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
