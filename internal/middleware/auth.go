package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// DevUserHeader names the caller in dev mode instead of a verified token.
const DevUserHeader = "X-User-ID"

type AuthConfig struct {
	DevMode     bool
	Keys        KeySource
	Issuer      string
	AppClientID string
	Logger      *slog.Logger
}

// Auth verifies user pool access tokens on the account endpoints.
type Auth struct {
	cfg AuthConfig
}

func NewAuth(cfg AuthConfig) (*Auth, error) {
	if !cfg.DevMode {
		if cfg.Keys == nil {
			return nil, errors.New("middleware: Keys is required when DevMode is false")
		}
		if cfg.Issuer == "" || cfg.AppClientID == "" {
			return nil, errors.New("middleware: Issuer and AppClientID are required when DevMode is false")
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Auth{cfg: cfg}, nil
}

// accessClaims are the user pool access token claims the gateway checks.
type accessClaims struct {
	jwt.RegisteredClaims
	TokenUse string `json:"token_use"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if a.cfg.DevMode {
			a.handleDevMode(w, r, next)
			return
		}

		a.handleJWT(w, r, next)
	})
}

func isPublicPath(p string) bool {
	clean := path.Clean(p)
	return clean == "/health" || clean == "/metrics" || strings.HasPrefix(clean, "/api/v1/auth/")
}

// handleDevMode trusts X-User-ID as the subject. A bearer token, when sent, is
// still forwarded so account operations can reach the user pool.
func (a *Auth) handleDevMode(w http.ResponseWriter, r *http.Request, next http.Handler) {
	userID := r.Header.Get(DevUserHeader)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "X-User-ID header required in dev mode")
		return
	}

	token, _ := bearerToken(r)
	ctx := SetPrincipal(r.Context(), Principal{Sub: userID, Username: userID, AccessToken: token})
	next.ServeHTTP(w, r.WithContext(ctx))
}

func (a *Auth) handleJWT(w http.ResponseWriter, r *http.Request, next http.Handler) {
	tokenStr, err := bearerToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return
	}

	claims := &accessClaims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("kid header not found")
		}
		return a.cfg.Keys.GetKey(r.Context(), kid)
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(a.cfg.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		a.cfg.Logger.DebugContext(r.Context(), "token rejected", "error", err)
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
		return
	}

	// Access tokens carry client_id instead of aud.
	if claims.TokenUse != "access" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "access token required")
		return
	}
	if claims.ClientID != a.cfg.AppClientID {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "token issued to another client")
		return
	}
	if claims.Subject == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "sub claim not found")
		return
	}

	p := Principal{Sub: claims.Subject, Username: claims.Username, AccessToken: tokenStr}
	if p.Username == "" {
		p.Username = p.Sub
	}
	next.ServeHTTP(w, r.WithContext(SetPrincipal(r.Context(), p)))
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("authorization header required")
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}
	return strings.TrimSpace(token), nil
}
