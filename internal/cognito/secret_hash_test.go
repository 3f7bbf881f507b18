package cognito_test

import (
	"testing"

	"github.com/jaekwang-park/userpool-auth/internal/cognito"
)

func TestComputeSecretHash(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		clientID     string
		clientSecret string
		want         string
	}{
		{
			name:         "known reference value",
			username:     "testuser@example.com",
			clientID:     "abc123clientid",
			clientSecret: "supersecret",
			want:         "ImWq8CQ0hlgdVBQKrJvIxx9X7eeUXdlvGsWWCVBYPt8=",
		},
		{
			name:         "different user",
			username:     "other@example.com",
			clientID:     "abc123clientid",
			clientSecret: "supersecret",
			want:         "IkgJn1orjXuSkosyWx79ywiOiYyZL83uHqmACRJ4SiE=",
		},
		{
			name:         "empty username",
			username:     "",
			clientID:     "abc123clientid",
			clientSecret: "supersecret",
			want:         "Y3BuIdoagiTf7v5bH3+LA1tIEe2M65DN0QxyD5K/vwQ=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cognito.ComputeSecretHash(tt.username, tt.clientID, tt.clientSecret)
			if got != tt.want {
				t.Errorf("ComputeSecretHash() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSecretHash(t *testing.T) {
	if got := cognito.SecretHash("user", "client", ""); got != "" {
		t.Errorf("SecretHash() without secret = %q, want empty", got)
	}

	want := cognito.ComputeSecretHash("user", "client", "secret")
	if got := cognito.SecretHash("user", "client", "secret"); got != want {
		t.Errorf("SecretHash() = %q, want %q", got, want)
	}
}
