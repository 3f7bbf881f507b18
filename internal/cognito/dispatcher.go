package cognito

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jaekwang-park/userpool-auth/internal/config"
)

// NewDispatcher builds the Dispatcher selected by cfg.Transport.
func NewDispatcher(ctx context.Context, cfg config.CognitoConfig, logger *slog.Logger) (Dispatcher, error) {
	logger = logger.With("component", "cognito")

	switch cfg.Transport {
	case config.TransportSDK:
		client, err := NewAWSClient(ctx, cfg.Region, cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		client.logger = logger
		return client, nil
	case config.TransportHTTP, "":
		return NewUserPoolHTTPClient(cfg.Region,
			WithEndpoint(cfg.Endpoint),
			WithUserAgent(cfg.UserAgent),
			WithLogger(logger),
		), nil
	default:
		return nil, fmt.Errorf("unknown cognito transport %q", cfg.Transport)
	}
}
