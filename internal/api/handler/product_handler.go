package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/core/ports"
)

// ProductHandler serves the public product catalog.
type ProductHandler struct {
	orders ports.OrderService
}

func NewProductHandler(orders ports.OrderService) *ProductHandler {
	return &ProductHandler{orders: orders}
}

// List returns all products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.orders.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
