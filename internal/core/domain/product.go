package domain

import "errors"

// Product is a catalog entry with a stock counter. Stock is only ever mutated
// through the order flow's conditional decrement.
type Product struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Stock     int     `json:"stock" bson:"stock"`
}

var ErrProductNotFound = errors.New("product not found")
var ErrInsufficientStock = errors.New("not enough stock")
