package tohe

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Config holds API client configuration.
type Config struct {
	// BaseURL is the API origin, e.g. https://api.tohe.example.
	BaseURL string `env:"API_BASE_URL,required"`
	// Timeout bounds each request when no custom HTTP client is provided.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// TokenSource supplies the bearer token for authenticated requests.
// session.Store satisfies this; ok == false sends the request anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// ClientOption configures the API client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client, overriding Config.Timeout.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource sets the bearer token source for authenticated requests.
func WithTokenSource(ts TokenSource) ClientOption {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithLogger sets the logger for request diagnostics. Defaults to a
// discarding logger.
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}
