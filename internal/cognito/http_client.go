package cognito

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultUserAgent is sent in X-Amz-User-Agent unless overridden.
	DefaultUserAgent = "userpool-auth-go/1.0"

	jsonContentType = "application/x-amz-json-1.1"
	defaultTimeout  = 30 * time.Second
)

// Endpoint returns the regional user pool endpoint.
func Endpoint(region string) string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/", region)
}

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UserPoolHTTPClient sends operation requests to the user pool JSON endpoint.
type UserPoolHTTPClient struct {
	endpoint  string
	userAgent string
	doer      Doer
	logger    *slog.Logger
}

// Option configures a UserPoolHTTPClient.
type Option func(*UserPoolHTTPClient)

// WithEndpoint overrides the regional endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *UserPoolHTTPClient) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithDoer replaces the HTTP transport.
func WithDoer(doer Doer) Option {
	return func(c *UserPoolHTTPClient) {
		if doer != nil {
			c.doer = doer
		}
	}
}

// WithUserAgent overrides the X-Amz-User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *UserPoolHTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *UserPoolHTTPClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewUserPoolHTTPClient creates a client for the user pool in region.
func NewUserPoolHTTPClient(region string, opts ...Option) *UserPoolHTTPClient {
	c := &UserPoolHTTPClient{
		endpoint:  Endpoint(region),
		userAgent: DefaultUserAgent,
		doer:      &http.Client{Timeout: defaultTimeout},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts input as the body of op and decodes a successful response into output.
// output may be nil when the caller does not need the response body.
func (c *UserPoolHTTPClient) Send(ctx context.Context, op Operation, input, output any) error {
	start := time.Now()
	caught, failed := c.send(ctx, op, input, output)
	if !failed {
		c.logger.DebugContext(ctx, "user pool request completed",
			slog.String("operation", string(op)),
			slog.Duration("duration", time.Since(start)),
		)
		return nil
	}

	c.logger.DebugContext(ctx, "user pool request failed",
		slog.String("operation", string(op)),
		slog.Any("error", caught),
	)
	return dispatchError(caught)
}

// send performs the single request. caught is exactly what went wrong, which may
// be nil when the transport returns neither a response nor an error.
func (c *UserPoolHTTPClient) send(ctx context.Context, op Operation, input, output any) (caught any, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			caught, failed = r, true
		}
	}()

	body, err := json.Marshal(input)
	if err != nil {
		return err, true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err, true
	}
	req.Header.Set("Content-Type", jsonContentType)
	req.Header.Set("X-Amz-User-Agent", c.userAgent)
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("X-Amz-Target", op.Target())

	resp, err := c.doer.Do(req)
	if err != nil {
		return err, true
	}
	if resp == nil {
		return nil, true
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeErrorResponse(resp), true
	}

	if resp.Body == nil {
		return nil, false
	}
	if output == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, false
	}
	if err := json.NewDecoder(resp.Body).Decode(output); err != nil && !errors.Is(err, io.EOF) {
		return err, true
	}
	return nil, false
}

var _ Dispatcher = (*UserPoolHTTPClient)(nil)
