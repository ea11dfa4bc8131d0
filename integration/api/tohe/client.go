package tohe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toheco/tohekit/core/logger"
)

// Client calls the ToHe storefront REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

// New creates an API client. BaseURL is required; a trailing slash is
// tolerated.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// apiMessage is the error envelope the API uses for non-2xx responses.
type apiMessage struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one API call: encodes body (when non-nil) as JSON, attaches
// the bearer token when the source holds one, and decodes a 2xx response
// into out (when non-nil). Non-2xx responses return *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "api request failed",
			logger.Component("tohe"),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.DebugContext(ctx, "api request",
		logger.Component("tohe"),
		logger.RequestID(requestID),
		logger.Duration(time.Since(start)),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg apiMessage
		_ = json.Unmarshal(raw, &msg)
		message := msg.Error
		if message == "" {
			message = msg.Message
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	return nil
}
