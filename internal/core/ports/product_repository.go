package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// ProductRepository defines persistence for the product catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, productID string) (*domain.Product, error)

	// DecrementStock atomically subtracts qty from the product's stock.
	// The check `stock >= qty` and the decrement are a single conditional
	// update so two concurrent orders can never jointly overdraw stock.
	// Returns domain.ErrProductNotFound if the product does not exist and
	// domain.ErrInsufficientStock if the remaining stock is too low.
	DecrementStock(ctx context.Context, productID string, qty int) error

	// Seed inserts the given products only when the catalog is empty.
	Seed(ctx context.Context, products []domain.Product) error
}
