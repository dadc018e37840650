// Package api serves read-only HTTP API over the pixels contract.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/onemilpixels/pixels-contract/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewServer creates an HTTP handler with all routes configured.
func NewServer(logger *zap.Logger, reader PixelReader) http.Handler {
	mux := chi.NewRouter()

	mux.Use(RequestID)
	mux.Use(Logging(logger))
	mux.Use(Recovery(logger))
	mux.Use(metrics.Metrics)

	h := NewPixelHandler(reader)

	mux.Route("/v1", func(r chi.Router) {
		r.Get("/pixels/{id}", h.GetPixel)
		r.Get("/pixels/{id}/owner", h.GetOwner)
		r.Get("/pixels/{id}/price", h.GetPrice)
		r.Get("/contract", h.GetContract)
	})

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
