package ports

import "context"

// ChatService is the rule-based order-status responder. It is stateless:
// every call is classified independently and degrades to a fixed fallback
// sentence when no order status can be produced.
type ChatService interface {
	Respond(ctx context.Context, userID, message, orderID string) (string, error)
}
