package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oguzk/unienroll/internal/pkg/apperrors"
	"github.com/oguzk/unienroll/internal/session"
)

// Client is the typed HTTP client for the university platform API.
// It attaches the bearer token from the session to every request and
// evicts the session when any response comes back 401, mirroring the
// interceptor pair the platform's browser clients use.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	logger  zerolog.Logger
}

// NewClient creates an API client rooted at baseURL (including the
// /api prefix).
func NewClient(baseURL string, timeout time.Duration, sess *session.Session, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		logger:  logger,
	}
}

// errorPayload is the optional message body the server attaches to
// rejected requests.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do executes one API request. body (when non-nil) is JSON-encoded;
// out (when non-nil) receives the decoded JSON response. All error
// mapping to the apperrors taxonomy happens here.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Str("requestId", requestID).Msg("Request failed in transport")
		return fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("requestId", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API request")

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired or invalid; evict the session no matter which
		// operation triggered it.
		c.session.ForceLogout()
		return apperrors.ErrSessionExpired
	}

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewServerError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// readErrorMessage extracts the server's message payload from a
// rejected response, falling back to the raw body text.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return strings.TrimSpace(string(raw))
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
