// Package downstream forwards extracted keywords to the external search
// service and returns its JSON reply.
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"querykeys/pkg/categorizer"
)

// DefaultTimeout bounds a single downstream call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

const (
	maxResponseBodySize = 5 * 1024 * 1024
	RequestIDHeader     = "X-Request-ID"
)

var (
	ErrTransport = errors.New("downstream: transport failure")
	ErrStatus    = errors.New("downstream: unexpected status")
	ErrDecode    = errors.New("downstream: malformed response body")
)

// Searcher sends keywords to the search service.
type Searcher interface {
	Search(ctx context.Context, keywords categorizer.Result) (Response, error)
}

// Response is the downstream JSON body, kept verbatim so it can be relayed
// unmodified.
type Response struct {
	Body json.RawMessage
}

// HasError reports whether the body carries an error indicator: an object
// with an "error" key, an array holding the string "error", or a string
// containing "error".
func (r Response) HasError() bool {
	var body any
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return false
	}
	switch v := body.(type) {
	case map[string]any:
		_, ok := v["error"]
		return ok
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "error" {
				return true
			}
		}
	case string:
		return strings.Contains(v, "error")
	}
	return false
}

var _ Searcher = (*Client)(nil)

// Client POSTs keyword maps to a fixed search endpoint.
type Client struct {
	url     string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero keeps DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit throttles outbound calls to rps requests per second.
// A non-positive value disables throttling.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:     url,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c
}

// URL returns the configured search endpoint.
func (c *Client) URL() string {
	return c.url
}

// Search POSTs keywords as JSON and returns the decoded reply. Network errors,
// non-2xx statuses and non-JSON bodies are all returned as errors; no retry is
// attempted. The configured timeout covers the rate limiter wait as well as
// the HTTP exchange.
func (c *Client) Search(ctx context.Context, keywords categorizer.Result) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, fmt.Errorf("%w: rate limiter: %v", ErrTransport, err)
		}
	}

	payload, err := json.Marshal(keywords)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode keywords: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, fmt.Errorf("%w: %s for url: %s", ErrStatus, resp.Status, c.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return Response{}, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}
	if !json.Valid(body) {
		return Response{}, fmt.Errorf("%w from %s", ErrDecode, c.url)
	}

	return Response{Body: json.RawMessage(body)}, nil
}

// Ping checks that the search service answers HTTP at all. Any status code
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	resp.Body.Close()
	return nil
}

type contextKey string

const requestIDKey contextKey = "request_id"

// ContextWithRequestID attaches a request id that Search forwards downstream.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
