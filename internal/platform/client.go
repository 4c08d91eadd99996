package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alvesdmateus/paasctl/pkg/config"
)

const apiKeyHeader = "X-Api-Key"

// Client is a thin client for the platform API. One request per operation,
// no retries; every failure is terminal for the invoking command.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	logger  zerolog.Logger
}

// New creates a platform client from the loaded configuration.
// A missing API key is rejected here, before any request is attempted.
func New(cfg config.APIConfig, logger zerolog.Logger) (*Client, error) {
	if cfg.Key == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		key:     cfg.Key,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "platform-client").Logger(),
	}, nil
}

// Do performs a single synchronous request against the API and validates the
// response. On success the raw response body is returned unchanged for the
// caller to decode further. A non-nil body is encoded as JSON; payloads are
// always built from typed values, never assembled as strings.
func (c *Client) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.key)
	req.Header.Set("X-Request-Id", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Msg("Sending API request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrTransport{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrTransport{Method: method, URL: url, Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("http_status", resp.StatusCode).
		Int("body_bytes", len(raw)).
		Msg("Received API response")

	result, err := Classify(raw)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, ErrAPIFailure{Status: result.Status, Message: result.Failure}
	}

	return result.Body, nil
}
