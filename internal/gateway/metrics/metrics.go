// Package metrics defines and registers all custom Prometheus metrics for
// the ordering client's gateway. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordering"

// RequestsTotal counts completed backend calls.
// Labels:
//   - operation: gateway operation name (e.g. "list_menu", "create_order")
//   - transport: "public" or "authenticated"
//   - code: HTTP status code, or "error" when the request never completed
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend calls, by operation, transport and status code.",
	},
	[]string{"operation", "transport", "code"},
)

// RequestDuration measures how long a single backend call takes.
// Label:
//   - operation: gateway operation name
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend calls from dispatch to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// SessionEvictionsTotal counts forced logouts triggered by a 401 on the
// authenticated transport.
var SessionEvictionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_evictions_total",
		Help:      "Total number of sessions torn down after an unauthorized response.",
	},
)
