package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CapturesStatus(t *testing.T) {
	handler := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, before+1, testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestMetrics_InFlightReturnsToZero(t *testing.T) {
	handler := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.GreaterOrEqual(t, testutil.ToFloat64(requestsInFlight), 1.0)
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(requestsInFlight)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, before, testutil.ToFloat64(requestsInFlight))
}

func TestMetrics_RoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/v1/pixels/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := requestsTotal.WithLabelValues(http.MethodGet, "/v1/pixels/{id}", "200")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/v1/pixels/1", "/v1/pixels/2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestObserveRPC(t *testing.T) {
	ok := rpcCallsTotal.WithLabelValues("ownerOf", "ok")
	failed := rpcCallsTotal.WithLabelValues("ownerOf", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	ObserveRPC("ownerOf", nil)
	ObserveRPC("ownerOf", errors.New("bad"))
	ObserveRPC("ownerOf", nil)

	require.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	require.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}
