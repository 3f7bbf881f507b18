package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/cognito"
	"github.com/jaekwang-park/userpool-auth/internal/service"
)

const testSharedSecret = "JBSWY3DPEHPK3PXP"

func TestAuthService_SetUpTOTP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := &fakeDispatcher{sendFn: respondWith(cognito.AssociateSoftwareTokenResponse{SecretCode: testSharedSecret})}
		svc := service.NewAuthService(d, "client-1", "")

		got, err := svc.SetUpTOTP(t.Context(), service.SetUpTOTPInput{AccessToken: "tok", Username: "alice"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SharedSecret != testSharedSecret {
			t.Errorf("SharedSecret: got %q", got.SharedSecret)
		}
		if got.Username != "alice" {
			t.Errorf("Username: got %q", got.Username)
		}
	})

	t.Run("service exception keeps its name", func(t *testing.T) {
		d := &fakeDispatcher{sendFn: failWith(autherr.NewService(autherr.InvalidParameterException, "bad", nil))}
		svc := service.NewAuthService(d, "client-1", "")

		_, err := svc.SetUpTOTP(t.Context(), service.SetUpTOTPInput{AccessToken: "tok"})
		assertAuthError(t, err, autherr.InvalidParameterException)
	})

	t.Run("plain error is unknown", func(t *testing.T) {
		cause := errors.New("network down")
		d := &fakeDispatcher{sendFn: failWith(autherr.NewUnknown(cause))}
		svc := service.NewAuthService(d, "client-1", "")

		_, err := svc.SetUpTOTP(t.Context(), service.SetUpTOTPInput{AccessToken: "tok"})
		assertAuthError(t, err, autherr.Unknown)
		if !errors.Is(err, cause) {
			t.Errorf("expected error chain to contain cause, got %v", err)
		}
	})
}

func TestTOTPSetupDetails_GetSetupURI(t *testing.T) {
	details := service.TOTPSetupDetails{SharedSecret: testSharedSecret, Username: "alice"}

	tests := []struct {
		name        string
		appName     string
		accountName string
		wantPath    string
	}{
		{"explicit account", "MyApp", "bob@example.com", "/MyApp:bob@example.com"},
		{"account defaults to username", "MyApp", "", "/MyApp:alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := details.GetSetupURI(tt.appName, tt.accountName)

			if u.Scheme != "otpauth" {
				t.Errorf("scheme: got %q", u.Scheme)
			}
			if u.Host != "totp" {
				t.Errorf("host: got %q", u.Host)
			}
			if u.Path != tt.wantPath {
				t.Errorf("path: got %q, want %q", u.Path, tt.wantPath)
			}
			if got := u.Query().Get("secret"); got != testSharedSecret {
				t.Errorf("secret: got %q", got)
			}
			if got := u.Query().Get("issuer"); got != tt.appName {
				t.Errorf("issuer: got %q", got)
			}
		})
	}
}

func TestTOTPSetupDetails_Key(t *testing.T) {
	details := service.TOTPSetupDetails{SharedSecret: testSharedSecret, Username: "alice"}

	key, err := details.Key("MyApp", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.Secret() != testSharedSecret {
		t.Errorf("Secret: got %q", key.Secret())
	}
	if key.Issuer() != "MyApp" {
		t.Errorf("Issuer: got %q", key.Issuer())
	}
	if key.AccountName() != "alice" {
		t.Errorf("AccountName: got %q", key.AccountName())
	}

	// An authenticator app seeded with the key produces codes the secret accepts.
	code, err := totp.GenerateCode(key.Secret(), time.Now())
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if !totp.Validate(code, testSharedSecret) {
		t.Errorf("code %s did not validate", code)
	}
}
