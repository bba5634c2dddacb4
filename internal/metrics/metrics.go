// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TransactionsAdded counts committed transactions by type.
	TransactionsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "duitku",
		Name:      "transactions_added_total",
		Help:      "Committed transactions by type.",
	}, []string{"type"})

	// TransactionsDeleted counts reversed-and-removed transactions.
	TransactionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "duitku",
		Name:      "transactions_deleted_total",
		Help:      "Transactions reversed and removed.",
	})

	// BudgetEvaluations counts budget classifications of cash expenses by level.
	BudgetEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "duitku",
		Name:      "budget_evaluations_total",
		Help:      "Budget classifications of prospective cash expenses by level.",
	}, []string{"level"})

	// PersistenceFailures counts failed persistence operations by step.
	PersistenceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "duitku",
		Name:      "persistence_failures_total",
		Help:      "Failed persistence operations by step.",
	}, []string{"step"})

	// HTTPRequests counts handled HTTP requests by method, path, and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "duitku",
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "duitku",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// Handler returns the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
