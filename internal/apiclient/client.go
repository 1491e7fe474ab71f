package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID is forwarded to the backend so its logs can be correlated
// with ours.
const HeaderRequestID = "X-Request-ID"

// maxBodyBytes caps how much of a backend response is read into memory.
const maxBodyBytes = 1 << 20

type requestIDKey struct{}

// WithRequestID returns a context whose outbound requests carry id in the
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// Response is a fully-read backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// StatusError is returned when the backend answers with a 4xx or 5xx status.
// The response is kept so callers can inspect the error payload.
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apiclient: status %d: %s", e.Response.StatusCode, strings.TrimSpace(string(e.Response.Body)))
}

// Client issues JSON requests against the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New constructs a client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// PostJSON sends body as JSON to path. A transport failure is returned as is;
// a 4xx/5xx answer is returned as *StatusError with the full response.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (*Response, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build url: %w", err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestIDFrom(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("apiclient: read body: %w", err)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       data,
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{Response: out}
	}
	return out, nil
}
