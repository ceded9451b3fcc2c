package transport

import (
	"context"
	"net/http"

	"github.com/viant/edulearn/client/auth/store"
	"go.uber.org/zap"
)

type Option func(*RoundTripper)

// WithStore sets session store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithRefresher sets the token refresher
func WithRefresher(refresher Refresher) Option {
	return func(t *RoundTripper) {
		t.refresher = refresher
	}
}

// WithRefreshURL sets refresh endpoint used by the default refresher
func WithRefreshURL(URL string) Option {
	return func(t *RoundTripper) {
		t.refreshURL = URL
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}

// WithSessionExpiredHandler registers a callback invoked after a terminal
// authentication failure cleared the session.
func WithSessionExpiredHandler(fn func(ctx context.Context)) Option {
	return func(t *RoundTripper) {
		t.onExpired = fn
	}
}

// WithSharedRefresh collapses concurrent refreshes of the same refresh token
// into a single refresh call. Disabled by default.
func WithSharedRefresh() Option {
	return func(t *RoundTripper) {
		t.sharedRefresh = true
	}
}
