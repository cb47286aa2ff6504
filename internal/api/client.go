package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Client fetches price snapshots from the sfl.world REST API.
type Client struct {
	pricesURL  string
	httpClient *http.Client
	logger     *slog.Logger

	maxRetries int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new prices API client. The upstream endpoint is
// public, so no credentials are needed.
func NewClient(pricesURL string, opts ...ClientOption) *Client {
	c := &Client{
		pricesURL: pricesURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:     slog.Default(),
		maxRetries: 3,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMaxRetries sets how many times a retryable failure is retried.
func WithMaxRetries(max int) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
