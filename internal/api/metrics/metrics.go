// Package metrics defines the custom Prometheus metrics for the manufacturer
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "manufacturer"

// OrdersSubmittedTotal counts order intake decisions.
// Label:
//   - result: "accepted" (new order stored) or "duplicate" (existing record returned)
var OrdersSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_submitted_total",
		Help:      "Total number of order submissions, by intake result.",
	},
	[]string{"result"},
)

// OrdersDeletedTotal counts orders removed via DELETE /order/:id.
var OrdersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_deleted_total",
		Help:      "Total number of orders deleted.",
	},
)

// TokensIssuedTotal counts bearer tokens minted by profile upserts.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// PromotionsTotal counts admin-promotion attempts.
// Label:
//   - result: "granted" or "forbidden"
var PromotionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "promotions_total",
		Help:      "Total number of admin promotion attempts, by result.",
	},
	[]string{"result"},
)
