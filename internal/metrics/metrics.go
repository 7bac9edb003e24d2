package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup results recorded on LookupsTotal.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// Metrics holds the Prometheus collectors for the customer API.
type Metrics struct {
	CustomersSaved  prometheus.Counter
	SaveFailures    prometheus.Counter
	LookupsTotal    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on a fresh registry so separate instances never collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		CustomersSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "customer_records_saved_total",
			Help: "Total number of customers written",
		}),
		SaveFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "customer_records_save_failures_total",
			Help: "Total number of customer writes rejected by the store",
		}),
		LookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "customer_records_lookups_total",
			Help: "Customer lookups by result",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "customer_records_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		gatherer: reg,
	}
}

func (m *Metrics) IncrementSaved() {
	if m == nil {
		return
	}
	m.CustomersSaved.Inc()
}

func (m *Metrics) IncrementSaveFailure() {
	if m == nil {
		return
	}
	m.SaveFailures.Inc()
}

func (m *Metrics) ObserveLookup(result string) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request latency labelled by the matched chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.RequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
