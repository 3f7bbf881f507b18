// Package session keeps the tokens of a signed-in CLI user between invocations.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/jaekwang-park/userpool-auth/internal/service"
)

// ServiceName is the keyring service the CLI stores sessions under.
const ServiceName = "userpool-auth"

var ErrNotFound = errors.New("session not found")

// Session is the token set of one signed-in user.
type Session struct {
	Username     string
	IDToken      string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// FromTokens builds a session from a sign-in or refresh result issued at now.
func FromTokens(username string, t service.Tokens, now time.Time) Session {
	return Session{
		Username:     username,
		IDToken:      t.IDToken,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(t.ExpiresIn) * time.Second),
	}
}

// Expired reports whether the access token is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store persists sessions per profile.
type Store interface {
	Save(profile string, s Session) error
	Load(profile string) (Session, error)
	Delete(profile string) error
}

// NormalizeProfile maps a profile name to its storage key.
func NormalizeProfile(profile string) string {
	p := strings.ToLower(strings.TrimSpace(profile))
	if p == "" {
		return "default"
	}
	return p
}
