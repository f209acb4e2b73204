package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_KeepsStatusAndRoute(t *testing.T) {
	var route string
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/steps/{name}", func(w http.ResponseWriter, req *http.Request) {
		route = routePattern(req)
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/steps/CheckInventory", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "/steps/{name}", route)
}

func TestRoutePattern_OutsideChi(t *testing.T) {
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}

func TestGetStatusClass(t *testing.T) {
	tests := map[int]string{
		101: "1xx",
		200: "2xx",
		302: "3xx",
		404: "4xx",
		503: "5xx",
		42:  "unknown",
	}

	for code, class := range tests {
		assert.Equal(t, class, getStatusClass(code), "code %d", code)
	}
}
