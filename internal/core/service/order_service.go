package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// OrderService implements order placement and lookup plus catalog reads.
type OrderService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	logger   zerolog.Logger
}

func NewOrderService(products ports.ProductRepository, orders ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{products: products, orders: orders, logger: logger}
}

// PlaceOrder reserves stock and records the order. The stock check and
// decrement are one conditional update in the repository, so two concurrent
// orders on the same product can never jointly overdraw it.
func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (string, error) {
	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return "", err
	}

	if err := s.products.DecrementStock(ctx, input.ProductID, qty); err != nil {
		return "", err
	}

	order := &domain.Order{
		OrderID: generateOrderID(),
		UserID:  input.UserID,
		Items: []domain.OrderItem{
			{ProductID: product.ProductID, Qty: qty, Price: product.Price},
		},
		Status:    domain.OrderStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		// Stock is already taken at this point; surface the error rather
		// than guess at compensation.
		s.logger.Error().Err(err).Str("product_id", product.ProductID).Msg("order insert failed after stock decrement")
		return "", err
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Str("user_id", input.UserID).
		Str("product_id", product.ProductID).
		Int("qty", qty).
		Msg("order placed")

	return order.OrderID, nil
}

// GetOrder returns the order only to its owner.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListOrdersFor(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// generateOrderID returns a 12-character lowercase hex order id.
func generateOrderID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%012x", time.Now().UnixNano()&0xFFFFFFFFFFFF)
	}
	return fmt.Sprintf("%x", b)
}
