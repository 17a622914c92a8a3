// Package metrics holds the Prometheus instrumentation for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proteinlab",
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method and status code.",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "proteinlab",
		Name:      "http_request_duration_seconds",
		Help:      "Wall-clock time spent serving HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	proteinsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proteinlab",
		Name:      "proteins_stored_total",
		Help:      "Sequence records created, by source.",
	}, []string{"source"})
)

// Sources for RecordStored.
const (
	SourceUpload   = "upload"
	SourceText     = "text"
	SourceMutation = "mutation"
)

// ObserveRequest counts one served request.
func ObserveRequest(method string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// RecordStored counts one new sequence record from the given source.
func RecordStored(source string) {
	proteinsStored.WithLabelValues(source).Inc()
}

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
