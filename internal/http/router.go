package http

import (
	"net/http"

	"github.com/jaekwang-park/userpool-auth/internal/http/handler"
	"github.com/jaekwang-park/userpool-auth/internal/service"
)

// RouterDeps are the optional collaborators of the router.
type RouterDeps struct {
	// DB is pinged by /health when the user mirror is enabled.
	DB handler.Pinger
	// Metrics serves /metrics. The route is not registered when nil.
	Metrics http.Handler
	// AppName is the issuer in TOTP setup URIs.
	AppName string
}

func NewRouter(authSvc *service.AuthService, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check - intentionally outside /api/v1 for ALB health check compatibility
	mux.Handle("/health", handler.NewHealthHandler(deps.DB))

	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics)
	}

	// Unauthenticated user pool flows
	mux.Handle("/api/v1/auth/", handler.NewAuthHandler(authSvc))

	// Operations on the caller's own account
	mux.Handle("/api/v1/account/", handler.NewAccountHandler(authSvc, deps.AppName))

	return mux
}
