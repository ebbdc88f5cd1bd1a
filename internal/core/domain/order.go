package domain

import (
	"errors"
	"time"
)

// OrderStatusProcessing is the initial (and currently only) order status.
// Orders are immutable once placed; there is no transition path.
const OrderStatusProcessing = "processing"

// OrderItem is a single line of an order. The current flow always produces
// exactly one item per order.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Qty       int     `json:"qty" bson:"qty"`
	Price     float64 `json:"price" bson:"price"`
}

// Order is a placed order owned by a user.
type Order struct {
	OrderID   string      `json:"order_id" bson:"order_id"`
	UserID    string      `json:"user_id" bson:"user_id"`
	Items     []OrderItem `json:"items" bson:"items"`
	Status    string      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

var ErrOrderNotFound = errors.New("order not found")
var ErrForbidden = errors.New("not authorized")
