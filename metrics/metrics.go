package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequests counts all HTTP requests by method, route and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fieldserve",
	Name:      "http_requests_total",
	Help:      "Total number of HTTP requests",
}, []string{"method", "path", "status"})

// HTTPDuration records request duration in seconds.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "fieldserve",
	Name:      "http_request_duration_seconds",
	Help:      "Duration of HTTP requests in seconds",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "path"})

// TransitionsRejected counts status transitions rejected by the gateway.
var TransitionsRejected = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fieldserve",
	Name:      "status_transitions_rejected_total",
	Help:      "The total number of rejected status transitions",
})

// ReordersFailed counts route reorders that failed to persist.
var ReordersFailed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fieldserve",
	Name:      "route_reorders_failed_total",
	Help:      "The total number of failed route reorders",
})
