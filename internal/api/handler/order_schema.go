package handler

type createOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}
