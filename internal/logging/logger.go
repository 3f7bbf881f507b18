// Package logging builds the slog loggers used by the gateway and the CLI.
// Passwords, codes and user pool tokens flow through every request, so every
// handler redacts them.
package logging

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)
)

// New returns a JSON (or text) logger writing to w at the given level.
func New(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// RedactOptions lists the fields and values never written to logs.
func RedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("old_password"),
		masq.WithFieldName("new_password"),
		masq.WithFieldName("PreviousPassword"),
		masq.WithFieldName("ProposedPassword"),
		masq.WithFieldName("code"),
		masq.WithFieldName("ConfirmationCode"),
		masq.WithFieldName("UserCode"),
		masq.WithFieldName("SecretHash"),
		masq.WithFieldName("SecretCode"),
		masq.WithFieldName("shared_secret"),
		masq.WithFieldName("AccessToken"),
		masq.WithFieldName("access_token"),
		masq.WithFieldName("IdToken"),
		masq.WithFieldName("id_token"),
		masq.WithFieldName("RefreshToken"),
		masq.WithFieldName("refresh_token"),
		masq.WithFieldName("Session"),
		masq.WithFieldName("authorization"),

		masq.WithFieldPrefix("secret"),

		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr hook applying RedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(RedactOptions(), opts...)...)
}

type ctxKey struct{}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}
