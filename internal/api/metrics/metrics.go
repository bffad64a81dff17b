// Package metrics defines and registers all custom Prometheus metrics for
// the ordering frontend. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordering_frontend"

// BackendRequestsTotal counts calls to the ordering API.
// Labels:
//   - endpoint: logical operation name (e.g. "list_restaurants", "create_order")
//   - outcome: "ok", "api_error" (non-2xx with decoded detail) or "transport_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the ordering API.",
	},
	[]string{"endpoint", "outcome"},
)

// BackendRequestDuration measures one ordering API round-trip.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of ordering API round-trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ViewsRenderedTotal counts rendered pages by view name.
var ViewsRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_rendered_total",
		Help:      "Total number of views rendered.",
	},
	[]string{"view"},
)

// AccessDeniedTotal counts requests the authorization gate rejected.
// Labels:
//   - path: the route that was refused
//   - role: the session role at the time ("" for anonymous)
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of view requests refused by the authorization gate.",
	},
	[]string{"path", "role"},
)

// SessionsEstablishedTotal counts successful logins by decoded role claim.
var SessionsEstablishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_established_total",
		Help:      "Total number of sessions established, by decoded role claim.",
	},
	[]string{"role"},
)
