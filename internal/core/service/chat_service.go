package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// FallbackReply is returned for every message the bot cannot answer with an
// order status.
const FallbackReply = "I don't have access to that information, but I can forward your request to our support team. Would you like me to do that?"

const statusDateLayout = "02 Jan 2006"

// deliveryEstimateDays is added to an order's creation date to produce the
// estimated delivery date.
const deliveryEstimateDays = 5

// ChatService answers order-status questions with a fixed decision tree over
// substring matches. No language model is involved.
type ChatService struct {
	orders ports.OrderRepository
	logger zerolog.Logger
}

func NewChatService(orders ports.OrderRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{orders: orders, logger: logger}
}

// Respond classifies the message and, when it carries an order id owned by
// userID, returns a status sentence; everything else degrades to the fixed
// fallback sentence.
func (s *ChatService) Respond(ctx context.Context, userID, message, orderID string) (string, error) {
	text := strings.ToLower(strings.TrimSpace(message))

	if orderID == "" {
		orderID = candidateOrderID(text)
	}

	if orderID != "" {
		order, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				return FallbackReply, nil
			}
			return "", err
		}
		if order.UserID != userID {
			// Not the owner: indistinguishable from not found.
			return FallbackReply, nil
		}
		return statusSentence(order), nil
	}

	switch intent := classifyIntent(text); intent {
	case "returns", "shipping_address":
		s.logger.Debug().Str("intent", intent).Msg("chat request forwarded to fallback")
	}
	return FallbackReply, nil
}

// candidateOrderID treats the message itself as an order id when it is all
// digits, or at least 8 characters and fully alphanumeric.
func candidateOrderID(text string) string {
	if text == "" {
		return ""
	}
	digitsOnly := true
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			digitsOnly = false
		default:
			return ""
		}
	}
	if digitsOnly || len(text) >= 8 {
		return text
	}
	return ""
}

func classifyIntent(text string) string {
	switch {
	case strings.Contains(text, "return"):
		return "returns"
	case strings.Contains(text, "change shipping address"), strings.Contains(text, "update address"):
		return "shipping_address"
	default:
		return "other"
	}
}

func statusSentence(order *domain.Order) string {
	placed := order.CreatedAt.Format(statusDateLayout)
	eta := order.CreatedAt.AddDate(0, 0, deliveryEstimateDays).Format(statusDateLayout)
	return fmt.Sprintf("Your order #%s is %s (placed on %s). Estimated delivery: %s.",
		order.OrderID, order.Status, placed, eta)
}
