package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// OrderRepository defines persistence for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// FindByID retrieves an order by id without an owner filter; ownership
	// checks belong to the caller.
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
