package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astrom_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astrom_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	reductionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astrom_reductions_total",
			Help: "Total number of reductions performed, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	reductionDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astrom_reduction_duration_seconds",
			Help:    "Reduction computation time in seconds.",
			Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1},
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(reductionsTotal)
	prometheus.MustRegister(reductionDurationSeconds)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveReduction records one reduction of the given kind
// ("timecorrect", "observe" or "mjd") with its outcome ("ok" or
// "invalid") and duration.
func ObserveReduction(kind, outcome string, d time.Duration) {
	reductionsTotal.WithLabelValues(kind, outcome).Inc()
	if outcome == "ok" {
		reductionDurationSeconds.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// knownRoutes are the exact paths the server registers. Anything else
// collapses to "other" so scanners cannot inflate label cardinality.
var knownRoutes = map[string]bool{
	"/healthz":            true,
	"/readyz":             true,
	"/metrics":            true,
	"/api/v1/timecorrect": true,
	"/api/v1/observe":     true,
	"/api/v1/mjd":         true,
}

// normalizeRoute maps a request path to a bounded metric label.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	if p := strings.TrimSuffix(path, "/"); knownRoutes[p] {
		return p
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
