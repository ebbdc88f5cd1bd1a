package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

type profileResponse struct {
	Profile *domain.User   `json:"profile"`
	Orders  []domain.Order `json:"orders"`
}

// ProfileHandler serves the authenticated user's account and order history.
type ProfileHandler struct {
	auth   ports.AuthService
	orders ports.OrderService
}

func NewProfileHandler(auth ports.AuthService, orders ports.OrderService) *ProfileHandler {
	return &ProfileHandler{auth: auth, orders: orders}
}

// Get returns the profile and order history.
//
// @Summary      Get profile and order history
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.auth.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListOrdersFor(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Profile: user, Orders: orders})
}
