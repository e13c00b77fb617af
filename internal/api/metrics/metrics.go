// Package metrics defines the custom Prometheus metrics for the commerce
// admin API. It is the single source of truth for metric names, labels, and
// help strings. HTTP-level request metrics come from the echoprometheus
// middleware; the metrics here count domain outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce_admin"

// EntityWritesTotal counts successful create/update/delete operations.
// Labels:
//   - entity: user, category, product, order, order_item
//   - operation: create, update, delete
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity writes, by entity and operation.",
	},
	[]string{"entity", "operation"},
)

// ReferentialFailuresTotal counts writes rejected because a foreign key
// pointed at a non-existent row.
// Label:
//   - procedure: the RPC procedure name (e.g. "orderItems.create")
var ReferentialFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "referential_failures_total",
		Help:      "Total number of writes rejected by the pre-write existence check.",
	},
	[]string{"procedure"},
)

// ValidationFailuresTotal counts requests rejected before any persistence
// access because their input failed schema validation.
// Label:
//   - procedure: the RPC procedure name (e.g. "products.create")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by input validation.",
	},
	[]string{"procedure"},
)
