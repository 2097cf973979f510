package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks handler latency per matched route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"method", "route", "status"},
	)

	// CouponInteractions counts recorded clicks and votes
	CouponInteractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coupon_interactions_total",
			Help: "Number of coupon interactions recorded, by kind",
		},
		[]string{"kind"},
	)
)

func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

func RecordInteraction(kind string) {
	CouponInteractions.WithLabelValues(kind).Inc()
}
