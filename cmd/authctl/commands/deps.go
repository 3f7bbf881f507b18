package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/jaekwang-park/userpool-auth/internal/cognito"
	"github.com/jaekwang-park/userpool-auth/internal/config"
	"github.com/jaekwang-park/userpool-auth/internal/logging"
	"github.com/jaekwang-park/userpool-auth/internal/service"
	"github.com/jaekwang-park/userpool-auth/internal/session"
)

// Client is what a command needs to talk to the user pool.
type Client struct {
	Auth *service.AuthService
	// AppName is the issuer shown by authenticator apps.
	AppName string
}

// Deps are the collaborators shared by every command.
type Deps struct {
	NewClient  func(ctx context.Context, verbose bool) (*Client, error)
	Store      session.Store
	Now        func() time.Time
	ReadSecret func(prompt string) (string, error)
}

// DefaultDeps loads settings the same way the gateway does and keeps sessions
// in the OS keyring.
func DefaultDeps() Deps {
	return Deps{
		NewClient:  newClient,
		Store:      session.DefaultStore(),
		Now:        time.Now,
		ReadSecret: readSecret,
	}
}

func newClient(ctx context.Context, verbose bool) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Cognito.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level, "text", os.Stderr)

	dispatcher, err := cognito.NewDispatcher(ctx, cfg.Cognito, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cognito client: %w", err)
	}

	return &Client{
		Auth:    service.NewAuthService(dispatcher, cfg.Cognito.AppClientID, cfg.Cognito.AppClientSecret, service.WithLogger(logger)),
		AppName: cfg.AppName,
	}, nil
}

func readSecret(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("interactive prompt requires a terminal, pass the value as a flag")
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
