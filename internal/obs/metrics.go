package obs

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provisions_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"service", "method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provisions_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"service", "method", "route"})
)

// RecordRequest updates the request collectors for one finished request.
func RecordRequest(service, method, route string, status int, elapsed time.Duration) {
	requestTotal.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(service, method, route).Observe(elapsed.Seconds())
}
