package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaekwang-park/userpool-auth/internal/cognito"
	"github.com/jaekwang-park/userpool-auth/internal/config"
	authhttp "github.com/jaekwang-park/userpool-auth/internal/http"
	"github.com/jaekwang-park/userpool-auth/internal/logging"
	"github.com/jaekwang-park/userpool-auth/internal/metrics"
	"github.com/jaekwang-park/userpool-auth/internal/middleware"
	"github.com/jaekwang-park/userpool-auth/internal/repository"
	"github.com/jaekwang-park/userpool-auth/internal/service"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := logging.New(slog.LevelInfo, "json", os.Stdout)
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.ParseLogLevel(), cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"auth_dev_mode", cfg.AuthDevMode,
		"log_level", cfg.LogLevel,
		"cognito_transport", cfg.Cognito.Transport,
		"db_enabled", cfg.DB.Enabled,
	)

	dispatcher, err := cognito.NewDispatcher(ctx, cfg.Cognito, logger)
	if err != nil {
		return fmt.Errorf("failed to create cognito client: %w", err)
	}

	recorder := metrics.NewRecorder()
	svcOpts := []service.Option{
		service.WithObserver(recorder),
		service.WithLogger(logger),
	}
	routerDeps := authhttp.RouterDeps{
		Metrics: recorder.Handler(),
		AppName: cfg.AppName,
	}

	// Optional user mirror
	if cfg.DB.Enabled {
		db, err := repository.NewDB(ctx, cfg.DB.DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repository.ApplyMigrations(db); err != nil {
			return err
		}
		logger.Info("database connected")

		svcOpts = append(svcOpts, service.WithUserRepository(repository.NewPostgresUser(db)))
		routerDeps.DB = db
	}

	authSvc := service.NewAuthService(dispatcher, cfg.Cognito.AppClientID, cfg.Cognito.AppClientSecret, svcOpts...)
	logger.Info("cognito client initialized", "region", cfg.Cognito.Region)

	// Auth middleware
	authCfg := middleware.AuthConfig{
		DevMode: cfg.AuthDevMode,
		Logger:  logger,
	}
	if !cfg.AuthDevMode {
		jwksURL := middleware.CognitoJWKSURL(cfg.Cognito.Region, cfg.Cognito.UserPoolID)
		authCfg.Keys = middleware.NewJWKSClient(jwksURL)
		authCfg.Issuer = middleware.CognitoIssuer(cfg.Cognito.Region, cfg.Cognito.UserPoolID)
		authCfg.AppClientID = cfg.Cognito.AppClientID
	}
	auth, err := middleware.NewAuth(authCfg)
	if err != nil {
		return fmt.Errorf("failed to create auth middleware: %w", err)
	}

	// HTTP Server
	srv, err := authhttp.NewServer(authhttp.ServerConfig{
		Port:      cfg.ServerPort,
		RateLimit: cfg.RateLimit,
		Router:    routerDeps,
	}, logger, authSvc, auth)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
