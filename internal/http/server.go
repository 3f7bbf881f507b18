package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jaekwang-park/userpool-auth/internal/config"
	"github.com/jaekwang-park/userpool-auth/internal/middleware"
	"github.com/jaekwang-park/userpool-auth/internal/service"
)

// authPrefix is throttled per client IP, since every call there can make the
// user pool send a code or count a failed attempt.
const authPrefix = "/api/v1/auth/"

type ServerConfig struct {
	Port      string
	RateLimit config.RateLimitConfig
	Router    RouterDeps
}

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(cfg ServerConfig, logger *slog.Logger, authSvc *service.AuthService, auth *middleware.Auth) (*Server, error) {
	clientIP, err := middleware.ClientIP(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("failed to configure rate limit: %w", err)
	}

	router := NewRouter(authSvc, cfg.Router)

	// Apply middleware chain: logging -> recovery -> rate limit -> auth -> router
	var h http.Handler = auth.Middleware(router)
	h = throttlePrefix(authPrefix, middleware.RateLimit(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, clientIP, logger), h)
	h = middleware.Recovery(logger)(h)
	h = middleware.Logging(logger)(h)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Port),
			Handler:      h,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}, nil
}

// throttlePrefix applies limit only to requests under prefix.
func throttlePrefix(prefix string, limit func(http.Handler) http.Handler, next http.Handler) http.Handler {
	limited := limit(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, prefix) {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler returns the full middleware chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
