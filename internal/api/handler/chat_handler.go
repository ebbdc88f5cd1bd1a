package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/api/metrics"
	"github.com/storelane/commerce-api/internal/core/ports"
	"github.com/storelane/commerce-api/internal/core/service"
)

type chatRequest struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

type chatResponse struct {
	Bot string `json:"bot"`
}

// ChatHandler serves the order-status chatbot.
type ChatHandler struct {
	chat ports.ChatService
}

func NewChatHandler(chat ports.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat answers an order-status question for the authenticated user.
//
// @Summary      Ask the order-status chatbot
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Message and optional order id"
// @Success      200   {object}  chatResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	reply, err := h.chat.Respond(c.Request().Context(), userID, req.Message, req.OrderID)
	if err != nil {
		return err
	}

	kind := "status"
	if reply == service.FallbackReply {
		kind = "fallback"
	}
	metrics.ChatRepliesTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusOK, chatResponse{Bot: reply})
}
