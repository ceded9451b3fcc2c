package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option represents option
type Option func(c *Client)

// WithHTTPClient sets the http client; its transport is expected to authenticate requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTransport sets the round tripper of the default http client
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = transport
	}
}

// WithTimeout sets the overall request timeout, including a refresh and retry
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
