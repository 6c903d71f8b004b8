// Package backend adapts the order service REST API to the domain ports.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 64 << 10
)

// Client is a thin JSON client for the order service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the client from the backend section of the configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.Backend.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend.baseUrl is required")
	}

	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// errorBody is the error envelope returned by the order service.
type errorBody struct {
	Message string `json:"message"`
}

// do sends a JSON request and decodes a 2xx answer into out.
// Any other status is returned as *service.BackendError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeBackendError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}

func decodeBackendError(resp *http.Response) error {
	backendErr := &service.BackendError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	if err != nil || len(raw) == 0 {
		return backendErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		backendErr.Message = strings.TrimSpace(body.Message)
	}

	return backendErr
}

// statusOf returns the HTTP status of a backend error, or 0.
func statusOf(err error) int {
	var backendErr *service.BackendError
	if errors.As(err, &backendErr) {
		return backendErr.StatusCode
	}

	return 0
}
