// Package metrics defines and registers the custom Prometheus metrics for
// the commerce API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// RegistrationsStartedTotal counts registrations that were staged and got an
// OTP issued.
var RegistrationsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_started_total",
		Help:      "Total number of registrations staged for OTP verification.",
	},
)

// RegistrationsVerifiedTotal counts verification attempts by result.
// Label:
//   - result: "success", "not_found", "expired", "mismatch" or "error"
var RegistrationsVerifiedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_verified_total",
		Help:      "Total number of OTP verification attempts, by result.",
	},
	[]string{"result"},
)

// OrdersPlacedTotal counts order placement attempts by result.
// Label:
//   - result: "success", "product_not_found", "insufficient_stock" or "error"
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of order placement attempts, by result.",
	},
	[]string{"result"},
)

// ChatRepliesTotal counts chatbot replies.
// Label:
//   - kind: "status" (an order-status sentence) or "fallback"
var ChatRepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_replies_total",
		Help:      "Total number of chatbot replies, by kind.",
	},
	[]string{"kind"},
)
