package middleware_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/jaekwang-park/userpool-auth/internal/middleware"
)

func TestPrincipalContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := middleware.GetPrincipal(req); ok {
		t.Fatal("expected no principal on a fresh request")
	}

	want := middleware.Principal{Sub: "sub-1", Username: "alice", AccessToken: "tok"}
	req = req.WithContext(middleware.SetPrincipal(req.Context(), want))

	got, ok := middleware.GetPrincipal(req)
	if !ok {
		t.Fatal("expected principal")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := middleware.GetRequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = middleware.SetRequestID(ctx, "req-1")
	if got := middleware.GetRequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}
