package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rt := New(WithRoutes(
		Route{Path: "/v1/items", Method: http.MethodGet, Handler: ok, Middlewares: []func(http.Handler) http.Handler{tag("a"), tag("b")}},
		Route{Path: "/v1/items/:id", Method: http.MethodDelete, Handler: ok},
	))
	assert.Len(t, rt.Routes(), 2)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantCode   string
		wantOrder  []string
	}{
		{name: "rota com middlewares em ordem", method: http.MethodGet, target: "/v1/items", wantStatus: http.StatusNoContent, wantOrder: []string{"a", "b"}},
		{name: "rota com parâmetro", method: http.MethodDelete, target: "/v1/items/7", wantStatus: http.StatusNoContent},
		{name: "rota inexistente", method: http.MethodGet, target: "/v1/nada", wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrRouteNotFound},
		{name: "método não permitido", method: http.MethodPost, target: "/v1/items", wantStatus: http.StatusMethodNotAllowed, wantCode: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantCode), rec.Body.String())
			}
			if tt.wantOrder != nil {
				assert.Equal(t, tt.wantOrder, rec.Header().Values("X-Order"))
			}
		})
	}
}
