// Package backend is the HTTP client for the remote Pachamama platform
// API. Clients are built per call from the active tenant subdomain; the
// factory is stateless and construction is cheap.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/tenant"
)

// Config holds the remote API connection settings.
type Config struct {
	Scheme     string
	Host       string
	Timeout    time.Duration
	RetryCount int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Scheme:     "https",
		Host:       "restaurantes.cloud",
		Timeout:    30 * time.Second,
		RetryCount: 3,
	}
}

// Client talks to the platform API on behalf of one operator request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cookies    string
	retryCount int
}

// New builds a client whose base URL encodes the tenant subdomain (or
// the default host when subdomain is empty). cookies is the operator's
// inbound Cookie header, forwarded so every request carries credentials.
func New(cfg Config, subdomain, cookies string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    tenant.BaseURL(cfg.Scheme, cfg.Host, subdomain),
		cookies:    cookies,
		retryCount: cfg.RetryCount,
	}
}

// maxBackoff caps the retry backoff.
const maxBackoff = 30 * time.Second

func backoffFor(attempt int) time.Duration {
	if attempt <= 0 {
		return time.Second
	}
	seconds := 1
	for i := 1; i < attempt && i < 6; i++ {
		seconds *= 2
	}
	d := time.Duration(seconds) * time.Second
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// doWithRetry executes the request, retrying transport failures and 5xx
// responses with exponential backoff. 4xx responses and context
// cancellation are never retried.
func (c *Client) doWithRetry(ctx context.Context, method, path, contentType string, body []byte, result any) error {
	var lastErr error

	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoffFor(attempt)):
			}
		}

		lastErr = c.do(ctx, method, path, contentType, body, result)
		if lastErr == nil {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// do executes a single request against the platform API.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, result any) error {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return domain.ErrUpstreamUnavailable.WithError(fmt.Errorf("create request: %w", err))
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cookies != "" {
		req.Header.Set("Cookie", c.cookies)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response at all: surface the transport error text.
		return domain.ErrUpstreamUnavailable.WithMessage(err.Error()).WithError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ErrUpstreamUnavailable.WithError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, respBody)
	}

	switch out := result.(type) {
	case nil:
	case *[]byte:
		// Callers that normalize heterogeneous shapes decode themselves.
		*out = respBody
	default:
		if err := json.Unmarshal(respBody, result); err != nil {
			return domain.ErrUpstreamRejected.WithError(fmt.Errorf("decode response: %w", err))
		}
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	return c.doWithRetry(ctx, http.MethodGet, path, "", nil, result)
}

func (c *Client) getRaw(ctx context.Context, path string, raw *[]byte) error {
	return c.doWithRetry(ctx, http.MethodGet, path, "", nil, raw)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.doWithRetry(ctx, method, path, "application/json", body, nil)
}

// apiError maps an error response to the user-visible message: the
// server's structured message when present, else a generic fallback.
func apiError(status int, body []byte) *domain.AppError {
	msg := extractMessage(body)
	if msg == "" {
		msg = domain.ErrUpstreamRejected.Message
	}
	return &domain.AppError{
		Code:       domain.ErrUpstreamRejected.Code,
		Message:    msg,
		StatusCode: status,
	}
}

// extractMessage pulls a structured message out of an error body:
// top-level "message", then "error.message", then a bare "error" string.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	if len(envelope.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
		var plain string
		if err := json.Unmarshal(envelope.Error, &plain); err == nil {
			return plain
		}
	}
	return ""
}

func isRetryable(err error) bool {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	if appErr.Code == domain.ErrUpstreamUnavailable.Code {
		return true
	}
	return appErr.StatusCode >= 500
}
