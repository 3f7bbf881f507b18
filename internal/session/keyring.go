package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"
)

// Each token is its own keyring item; some platforms cap the size of a single
// secret below what three JWTs need.
const (
	fieldUsername     = "username"
	fieldIDToken      = "id_token"
	fieldAccessToken  = "access_token"
	fieldRefreshToken = "refresh_token"
	fieldExpiresAt    = "expires_at"
)

var fields = []string{fieldUsername, fieldIDToken, fieldAccessToken, fieldRefreshToken, fieldExpiresAt}

// KeyringStore keeps sessions in the OS keychain.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

// DefaultStore returns the keychain-backed store used by the CLI.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

func (k *KeyringStore) Save(profile string, s Session) error {
	values := map[string]string{
		fieldUsername:     s.Username,
		fieldIDToken:      s.IDToken,
		fieldAccessToken:  s.AccessToken,
		fieldRefreshToken: s.RefreshToken,
		fieldExpiresAt:    s.ExpiresAt.UTC().Format(time.RFC3339),
	}
	for _, f := range fields {
		if err := keyring.Set(k.serviceName, itemKey(profile, f), values[f]); err != nil {
			return fmt.Errorf("failed to save %s: %w", f, err)
		}
	}
	return nil
}

func (k *KeyringStore) Load(profile string) (Session, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v, err := keyring.Get(k.serviceName, itemKey(profile, f))
		if errors.Is(err, keyring.ErrNotFound) {
			return Session{}, ErrNotFound
		}
		if err != nil {
			return Session{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
		values[f] = v
	}

	s := Session{
		Username:     values[fieldUsername],
		IDToken:      values[fieldIDToken],
		AccessToken:  values[fieldAccessToken],
		RefreshToken: values[fieldRefreshToken],
	}
	if v := values[fieldExpiresAt]; v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Session{}, fmt.Errorf("invalid expiry in keyring: %w", err)
		}
		s.ExpiresAt = t
	}
	return s, nil
}

func (k *KeyringStore) Delete(profile string) error {
	found := false
	for _, f := range fields {
		err := keyring.Delete(k.serviceName, itemKey(profile, f))
		if errors.Is(err, keyring.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", f, err)
		}
		found = true
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func itemKey(profile, field string) string {
	return NormalizeProfile(profile) + "/" + field
}
