package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jaekwang-park/userpool-auth/internal/cognito"
	authhttp "github.com/jaekwang-park/userpool-auth/internal/http"
	"github.com/jaekwang-park/userpool-auth/internal/service"
)

// stubDispatcher answers every operation with an empty response.
type stubDispatcher struct {
	ops []cognito.Operation
}

func (s *stubDispatcher) Send(_ context.Context, op cognito.Operation, _, _ any) error {
	s.ops = append(s.ops, op)
	return nil
}

func newTestAuthSvc() *service.AuthService {
	return service.NewAuthService(&stubDispatcher{}, "client-1", "")
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router := authhttp.NewRouter(newTestAuthSvc(), authhttp.RouterDeps{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %s", result["status"])
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("registered", func(t *testing.T) {
		router := authhttp.NewRouter(newTestAuthSvc(), authhttp.RouterDeps{Metrics: metrics})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusTeapot {
			t.Errorf("expected metrics handler to serve, got %d", w.Code)
		}
	})

	t.Run("absent", func(t *testing.T) {
		router := authhttp.NewRouter(newTestAuthSvc(), authhttp.RouterDeps{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}

func TestRouter_AuthEndpointRegistered(t *testing.T) {
	router := authhttp.NewRouter(newTestAuthSvc(), authhttp.RouterDeps{})

	// Auth signup with empty body → should get a JSON error (not 404)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code == http.StatusNotFound {
		t.Errorf("expected auth route to be registered, got 404")
	}
}

func TestRouter_AccountEndpointRegistered(t *testing.T) {
	router := authhttp.NewRouter(newTestAuthSvc(), authhttp.RouterDeps{})

	// Router itself doesn't enforce auth, the account handler rejects a
	// request without a principal.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/signout", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d (body: %s)", w.Code, w.Body.String())
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := authhttp.NewRouter(newTestAuthSvc(), authhttp.RouterDeps{})

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
