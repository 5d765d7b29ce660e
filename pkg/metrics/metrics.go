// Package metrics defines the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every prometheus collector registered by the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StoreOpsTotal       *prometheus.CounterVec
	StoreOpDuration     *prometheus.HistogramVec
	NotificationsTotal  *prometheus.CounterVec
}

// New registers and returns the service collectors
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		StoreOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "kvstore_operations_total",
			Help:        "Total number of key-value store operations",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		StoreOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "kvstore_operation_duration_seconds",
			Help:        "Key-value store operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"operation"}),

		NotificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "status_notifications_total",
			Help:        "Total number of status-change notifications emitted",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}
}
