package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCollapsesPathParameters(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/productos/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := Middleware(mux)

	// Act
	for _, id := range []string{"7", "999"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/productos/"+id, nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	// Assert - both requests land on one collapsed label, not per-id labels
	collapsed := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/api/productos/{id}"))
	assert.Equal(t, float64(2), collapsed)

	raw := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/api/productos/7"))
	assert.Zero(t, raw)
}

func TestMiddlewareKeepsStaticPaths(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/productos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := Middleware(mux)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/productos", nil)

	// Act
	handler.ServeHTTP(rr, req)

	// Assert
	count := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/api/productos"))
	assert.Equal(t, float64(1), count)
}
