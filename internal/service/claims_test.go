package service_test

import (
	"testing"

	"github.com/jaekwang-park/userpool-auth/internal/service"
)

func TestParseIDToken(t *testing.T) {
	t.Run("reads claims", func(t *testing.T) {
		claims, err := service.ParseIDToken(signedIDToken(t, "sub-1", "alice", "alice@example.com"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Subject != "sub-1" || claims.Username != "alice" || claims.Email != "alice@example.com" {
			t.Errorf("got %+v", claims)
		}
		if claims.TokenUse != "id" {
			t.Errorf("TokenUse: got %q", claims.TokenUse)
		}
	})

	t.Run("username defaults to sub", func(t *testing.T) {
		claims, err := service.ParseIDToken(signedIDToken(t, "sub-1", "", ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Username != "sub-1" {
			t.Errorf("Username: got %q, want sub-1", claims.Username)
		}
	})

	t.Run("missing sub", func(t *testing.T) {
		if _, err := service.ParseIDToken(signedIDToken(t, "", "alice", "")); err == nil {
			t.Error("expected error for missing sub")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := service.ParseIDToken("not-a-jwt"); err == nil {
			t.Error("expected error for malformed token")
		}
	})
}
