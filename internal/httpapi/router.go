// internal/httpapi/router.go
//
// Package httpapi exposes the engine's status, enqueue, and search
// operations over HTTP, plus a Prometheus /metrics endpoint. Enqueue
// and search use chi's wildcard route rather than a single path
// segment because a work key legitimately contains '/'.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nibir1/gatecrawl/internal/index"
	"github.com/Nibir1/gatecrawl/internal/metrics"
)

// NewRouter builds the chi router backing the HTTP API.
func NewRouter(store *index.Store) http.Handler {
	h := &handlers{store: store}

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector(store))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/status", h.status)
	r.Get("/enqueue/*", h.enqueue)
	r.Get("/search/*", h.search)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}
