package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-records/internal/metrics"
)

// NewRouter builds the API router with the shared middleware stack. m may be nil.
func NewRouter(customers *CustomerController, m *metrics.Metrics, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	if m != nil {
		r.Use(m.Middleware)
	}
	r.Use(Recovery(logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteErrorResponse(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteErrorResponse(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	customers.Register(r)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}
