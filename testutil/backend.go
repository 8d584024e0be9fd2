package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewBackend starts a fake SmartHire backend from a route table keyed by
// "METHOD /path". Unrouted requests fail the test.
func NewBackend(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		handler, ok := routes[key]
		if !ok {
			t.Errorf("unexpected request: %s", key)
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

// JSONResponse returns a handler that writes a fixed JSON body
func JSONResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
