package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/store"
)

func newTestServer(t *testing.T) (*Server, *app.App) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a, err := app.New(app.Config{Store: s})
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	return New(Config{App: a}), a
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v, want %q", resp["status"], "ok")
	}
	if _, ok := resp["uptime"]; !ok {
		t.Error("response missing uptime field")
	}
}

func TestServer_Health_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestServer_RoutesRegistered(t *testing.T) {
	srv, _ := newTestServer(t)

	// Every API route should answer with something other than 404.
	paths := []string{
		"/api/sessions",
		"/api/events",
		"/api/events/recent",
		"/api/bindings",
		"/api/config",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code == http.StatusNotFound {
			t.Errorf("GET %s = 404, route not registered", path)
		}
	}
}

func TestServer_RegistersEventObserver(t *testing.T) {
	srv, a := newTestServer(t)

	if a.OnEvent == nil {
		t.Fatal("server should register itself as the app's event observer")
	}
	if srv.hub == nil {
		t.Fatal("server has no event hub")
	}
}
