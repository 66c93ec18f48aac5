package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dealerhub",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealerhub",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// Maintenance metrics

	TokensPurgedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dealerhub",
		Name:      "magic_tokens_purged_total",
		Help:      "Expired or used magic tokens removed by the purge job.",
	})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		TokensPurgedTotal,
	)
}

// HealthHandler reports liveness or readiness as JSON.
type HealthHandler interface {
	LivenessHandler() http.Handler
	ReadinessHandler() http.Handler
}

func NewServer(addr string, health HealthHandler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", health.LivenessHandler())
	mux.Handle("/readyz", health.ReadinessHandler())
	return &http.Server{Addr: addr, Handler: mux}
}
